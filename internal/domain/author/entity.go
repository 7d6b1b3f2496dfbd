package author

// Author 作者实体
// 说明：
// 1. Books只在需要时由查询填充，写操作不会级联到图书
// 2. 领域实体不依赖GORM tag，映射由infrastructure层完成
type Author struct {
	ID        int
	FirstName string
	LastName  string
	Bio       string
	Books     []*BookRef
}

// BookRef 作者名下图书的只读引用
// 作者包不依赖book包，避免循环引用
type BookRef struct {
	ID    int
	Title string
	Year  int
}

// FullName 作者全名
func (a *Author) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}
