package blog

import (
	"github.com/otabekov/blog-portal/internal/db"
)

type Category struct {
	db.Category
}

type Tag struct {
	db.Tag
}

type Comment struct {
	db.Comment
}

type Post struct {
	db.Post
	Category *Category
	Tags     []Tag
}
