package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/otabekov/blog-portal/internal/db"
)

type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

// CreatePostInput carries the fields of a new post. Unlike UpdatePost, the
// slug is caller-supplied and stored verbatim; the two operations keep
// deliberately different slug contracts.
type CreatePostInput struct {
	Title    string
	Slug     string
	Content  string
	Body     string
	IsActive *bool
}

// PostPatch holds the optional update fields; nil means "leave unchanged".
type PostPatch struct {
	Title    *string
	Body     *string
	IsActive *bool
}

// PostsByFilter retrieves posts with optional is_active, category and tag
// filters, newest first, with category and tags attached.
func (m *Manager) PostsByFilter(ctx context.Context, filter db.PostFilter) ([]Post, error) {
	dbPosts, err := m.db.Posts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return NewPosts(dbPosts), nil
}

// PostBySlug retrieves a single post by its slug, optionally restricted by
// is_active. Returns ErrPostNotFound when no post matches.
func (m *Manager) PostBySlug(ctx context.Context, slug string, isActive *bool) (*Post, error) {
	dbPost, err := m.db.PostBySlug(ctx, slug, isActive)
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	} else if dbPost == nil {
		return nil, fmt.Errorf("post %q: %w", slug, ErrPostNotFound)
	}

	post := NewPost(dbPost)
	return &post, nil
}

// CreatePost inserts a new post with the caller-supplied slug. Title and
// slug must be non-empty; is_active defaults to true. A duplicate slug
// fails with ErrSlugTaken, leaving the store untouched.
func (m *Manager) CreatePost(ctx context.Context, in CreatePostInput) (*Post, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if in.Slug == "" {
		return nil, fmt.Errorf("%w: slug must not be empty", ErrInvalidInput)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	dbPost := &db.Post{
		Title:    in.Title,
		Slug:     in.Slug,
		Content:  in.Content,
		Body:     in.Body,
		IsActive: isActive,
	}

	if err := m.db.CreatePost(ctx, dbPost); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return nil, fmt.Errorf("slug %q: %w", in.Slug, ErrSlugTaken)
		}
		return nil, fmt.Errorf("db create post: %w", err)
	}

	post := NewPost(dbPost)
	return &post, nil
}

// UpdatePost applies the patch to the post with the given id. A present
// non-empty title also regenerates the slug from it (derived here, never
// caller-supplied, the opposite of CreatePost). A present body is applied
// even when empty. A present is_active is applied whichever way it points.
// updated_at is refreshed on every successful update. Fails with
// ErrPostNotFound when the id does not exist and ErrSlugTaken when the
// regenerated slug collides.
func (m *Manager) UpdatePost(ctx context.Context, postID int, patch PostPatch) (*Post, error) {
	dbPost, err := m.db.UpdatePost(ctx, postID, func(p *db.Post) {
		if patch.Title != nil && *patch.Title != "" {
			p.Title = *patch.Title
			p.Slug = GenerateSlug(*patch.Title)
		}

		if patch.Body != nil {
			p.Body = *patch.Body
		}

		if patch.IsActive != nil {
			p.IsActive = *patch.IsActive
		}
	})
	if err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrSlugTaken)
		}
		return nil, fmt.Errorf("db update post: %w", err)
	} else if dbPost == nil {
		return nil, fmt.Errorf("post %d: %w", postID, ErrPostNotFound)
	}

	post := NewPost(dbPost)
	return &post, nil
}

// DeletePost removes the post row. Comments and likes of the post are left
// in place; only the post_tags/post_media association rows go with it.
// Fails with ErrPostNotFound when the id does not exist.
func (m *Manager) DeletePost(ctx context.Context, postID int) error {
	deleted, err := m.db.DeletePost(ctx, postID)
	if err != nil {
		return fmt.Errorf("db delete post: %w", err)
	} else if !deleted {
		return fmt.Errorf("post %d: %w", postID, ErrPostNotFound)
	}

	return nil
}

// Tags retrieves all tags ordered by name.
func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)

	return NewTags(list), err
}

// Categories retrieves all categories ordered by name.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)

	return NewCategories(list), err
}

// CommentsBySlug retrieves the comments of the post identified by slug,
// newest first, optionally filtered by is_active. Fails with
// ErrPostNotFound when the post does not exist.
func (m *Manager) CommentsBySlug(ctx context.Context, slug string, isActive *bool) ([]Comment, error) {
	dbPost, err := m.db.PostBySlug(ctx, slug, nil)
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	} else if dbPost == nil {
		return nil, fmt.Errorf("post %q: %w", slug, ErrPostNotFound)
	}

	list, err := m.db.CommentsByPost(ctx, dbPost.ID, isActive)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(list), nil
}
