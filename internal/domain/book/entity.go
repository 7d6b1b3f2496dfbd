package book

import (
	"github.com/xiebiao/bookcatalog/internal/domain/author"
)

// Book 图书实体
// 设计说明:
// 1. Image只保存文件名,图片字节存放在上传目录(或对象存储)中
// 2. 数据库是文件名的唯一来源,文件系统是字节的唯一来源,两者没有事务关联
// 3. Author由查询预加载填充,写操作只使用AuthorID
type Book struct {
	ID       int
	Title    string
	Year     int
	ISBN     string
	Summary  string
	Image    string // 图片文件名(可为空)
	AuthorID int
	Author   *author.Author
}

// HasImage 是否关联了图片文件
func (b *Book) HasImage() bool {
	return b.Image != ""
}

// ImageRenamed 与旧文件名相比是否发生了变化
func (b *Book) ImageRenamed(oldImage string) bool {
	return b.Image != oldImage
}
