package blog

import (
	"github.com/otabekov/blog-portal/internal/db"
)

func NewCategory(c *db.Category) *Category {
	if c == nil {
		return nil
	}
	return &Category{Category: *c}
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewTags(list []db.Tag) []Tag {
	tags := make([]Tag, len(list))
	for i := range list {
		tags[i] = NewTag(&list[i])
	}
	return tags
}

func NewCategories(list []db.Category) []Category {
	categories := make([]Category, len(list))
	for i := range list {
		categories[i] = Category{Category: list[i]}
	}
	return categories
}

func NewComment(c *db.Comment) Comment {
	return Comment{Comment: *c}
}

func NewComments(list []db.Comment) []Comment {
	comments := make([]Comment, len(list))
	for i := range list {
		comments[i] = NewComment(&list[i])
	}
	return comments
}

func NewPost(p *db.Post) Post {
	post := Post{
		Post:     *p,
		Category: NewCategory(p.Category),
	}

	if len(p.Tags) > 0 {
		post.Tags = NewTags(p.Tags)
	}

	return post
}

func NewPosts(list []db.Post) []Post {
	posts := make([]Post, len(list))
	for i := range list {
		posts[i] = NewPost(&list[i])
	}
	return posts
}
