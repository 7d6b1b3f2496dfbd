package dto

// BookView 图书响应
// File为图片的base64内容,只有图片文件存在时才返回
type BookView struct {
	ID       int            `json:"id" example:"1"`
	Title    string         `json:"title" example:"The Go Programming Language"`
	Year     int            `json:"year" example:"2015"`
	ISBN     string         `json:"isbn,omitempty" example:"9780134190440"`
	Summary  string         `json:"summary,omitempty" example:"Go语言权威指南"`
	Image    string         `json:"image,omitempty" example:"gopl.png"`
	AuthorID int            `json:"author_id" example:"1"`
	Author   *AuthorSummary `json:"author,omitempty"`
	File     string         `json:"file,omitempty" example:"iVBORw0KGgo="`
}

// AuthorSummary 图书响应中内嵌的作者信息
type AuthorSummary struct {
	ID        int    `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"Alan"`
	LastName  string `json:"last_name" example:"Donovan"`
}

// CreateBookRequest 创建图书请求
// File为base64编码的图片内容,携带File时必须同时指定Image文件名
type CreateBookRequest struct {
	Title    string `json:"title" binding:"required,max=200" example:"The Go Programming Language"`
	Year     int    `json:"year" binding:"min=0,max=9999" example:"2015"`
	ISBN     string `json:"isbn" binding:"max=20" example:"9780134190440"`
	Summary  string `json:"summary" binding:"max=5000" example:"Go语言权威指南"`
	Image    string `json:"image" binding:"max=255" example:"gopl.png"`
	AuthorID int    `json:"author_id" binding:"required,min=1" example:"1"`
	File     string `json:"file" example:"iVBORw0KGgo="`
}

// UpdateBookRequest 更新图书请求(整行覆盖)
// ID必须与路径中的id一致;Image为空表示清除图片关联
type UpdateBookRequest struct {
	ID       int    `json:"id" binding:"required,min=1" example:"1"`
	Title    string `json:"title" binding:"required,max=200" example:"The Go Programming Language"`
	Year     int    `json:"year" binding:"min=0,max=9999" example:"2015"`
	ISBN     string `json:"isbn" binding:"max=20" example:"9780134190440"`
	Summary  string `json:"summary" binding:"max=5000" example:"Go语言权威指南"`
	Image    string `json:"image" binding:"max=255" example:"gopl.png"`
	AuthorID int    `json:"author_id" binding:"required,min=1" example:"1"`
	File     string `json:"file" example:"iVBORw0KGgo="`
}
