package rest

import "github.com/otabekov/blog-portal/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPost(p blog.Post) Post {
	post := Post{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Content:       p.Content,
		Body:          p.Body,
		IsActive:      p.IsActive,
		CategoryID:    p.CategoryID,
		Tags:          Map(p.Tags, NewTag),
		ViewsCount:    p.ViewsCount,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		MinsRead:      p.MinsRead,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}

	return post
}

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		CreatedAt: p.CreatedAt,
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Text:      c.Text,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}
