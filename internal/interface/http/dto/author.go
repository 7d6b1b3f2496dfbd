package dto

// AuthorView 作者响应
type AuthorView struct {
	ID        int            `json:"id" example:"1"`
	FirstName string         `json:"first_name" example:"Alan"`
	LastName  string         `json:"last_name" example:"Donovan"`
	Bio       string         `json:"bio,omitempty" example:"Go团队成员"`
	Books     []*BookRefView `json:"books,omitempty"`
}

// BookRefView 作者名下的图书
type BookRefView struct {
	ID    int    `json:"id" example:"1"`
	Title string `json:"title" example:"The Go Programming Language"`
	Year  int    `json:"year" example:"2015"`
}

// CreateAuthorRequest 创建作者请求
type CreateAuthorRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100" example:"Alan"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Donovan"`
	Bio       string `json:"bio" binding:"max=2000" example:"Go团队成员"`
}

// UpdateAuthorRequest 更新作者请求(整行覆盖)
// ID必须与路径中的id一致
type UpdateAuthorRequest struct {
	ID        int    `json:"id" binding:"required,min=1" example:"1"`
	FirstName string `json:"first_name" binding:"required,max=100" example:"Alan"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Donovan"`
	Bio       string `json:"bio" binding:"max=2000" example:"Go团队成员"`
}
