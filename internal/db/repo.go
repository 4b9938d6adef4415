package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// ErrUniqueViolation marks insert/update failures caused by a unique
// constraint (duplicate post/tag/category slug or name).
var ErrUniqueViolation = errors.New("unique constraint violation")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// PostFilter holds the optional post listing filters. All set filters
// combine with AND. Field names line up with the is_active, category_id and
// tag_id query parameters decoded by urlstruct.
type PostFilter struct {
	IsActive   sql.NullBool
	CategoryID sql.NullInt64
	TagID      sql.NullInt64
}

func (f *PostFilter) apply(query *orm.Query) *orm.Query {
	if f.IsActive.Valid {
		query = query.Where(`"t"."is_active" = ?`, f.IsActive.Bool)
	}

	if f.CategoryID.Valid {
		query = query.Where(`"t"."category_id" = ?`, f.CategoryID.Int64)
	}

	if f.TagID.Valid {
		// EXISTS over the association table instead of a plain join, so a
		// post never appears once per matching post_tags row.
		query = query.Where(
			`EXISTS (SELECT 1 FROM post_tags pt WHERE pt.post_id = "t"."id" AND pt.tag_id = ?)`,
			f.TagID.Int64,
		)
	}

	return query
}

// Posts retrieves posts matching the filter with category and tags attached.
// Results are sorted by created_at DESC, ties broken by id DESC.
func (r *Repository) Posts(ctx context.Context, filter PostFilter) ([]Post, error) {
	var posts []Post
	query := filter.apply(
		r.db.ModelContext(ctx, &posts).
			Relation("Category").
			Relation("Tags"),
	)

	err := query.
		OrderExpr(`"t"."created_at" DESC, "t"."id" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// PostBySlug retrieves a single post by its slug with category and tags
// attached. Returns nil when no post matches.
func (r *Repository) PostBySlug(ctx context.Context, slug string, isActive *bool) (*Post, error) {
	post := &Post{}
	query := r.db.ModelContext(ctx, post).
		Relation("Category").
		Relation("Tags").
		Where(`"t"."slug" = ?`, slug)

	if isActive != nil {
		query = query.Where(`"t"."is_active" = ?`, *isActive)
	}

	err := query.
		OrderExpr(`"t"."created_at" DESC`).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

// CreatePost inserts the post in a single transaction, filling the
// server-assigned id and timestamps. A duplicate slug surfaces as
// ErrUniqueViolation.
func (r *Repository) CreatePost(ctx context.Context, post *Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		_, err := tx.ModelContext(ctx, post).Insert()
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert post %q: %w", post.Slug, ErrUniqueViolation)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// UpdatePost loads the post by id, applies the given changes and persists
// the full row together with a refreshed updated_at, all in one
// transaction. Returns nil when no post with this id exists.
func (r *Repository) UpdatePost(ctx context.Context, postID int, apply func(*Post)) (*Post, error) {
	post := &Post{ID: postID}

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		err := tx.ModelContext(ctx, post).
			WherePK().
			For("UPDATE").
			Select()
		if err != nil {
			return err
		}

		apply(post)
		post.UpdatedAt = time.Now()

		_, err = tx.ModelContext(ctx, post).
			WherePK().
			Update()
		return err
	})

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update post %d: %w", postID, ErrUniqueViolation)
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// DeletePost removes the post row. Association rows in post_tags and
// post_media go with it via ON DELETE CASCADE; comments and likes stay.
// Returns false when no post with this id exists.
func (r *Repository) DeletePost(ctx context.Context, postID int) (bool, error) {
	var deleted bool
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		res, err := tx.ModelContext(ctx, (*Post)(nil)).
			Where(`"t"."id" = ?`, postID).
			Delete()
		if err != nil {
			return err
		}

		deleted = res.RowsAffected() > 0
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return deleted, nil
}

// Tags retrieves all tags ordered by name.
func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// Categories retrieves all categories ordered by name.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// CommentsByPost retrieves comments of a post, newest first, optionally
// filtered by is_active.
func (r *Repository) CommentsByPost(ctx context.Context, postID int, isActive *bool) ([]Comment, error) {
	var comments []Comment
	query := r.db.ModelContext(ctx, &comments).
		Where(`"t"."post_id" = ?`, postID)

	if isActive != nil {
		query = query.Where(`"t"."is_active" = ?`, *isActive)
	}

	err := query.
		OrderExpr(`"t"."created_at" DESC, "t"."id" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// AddPostTag links a tag to a post. Duplicate pairs surface as
// ErrUniqueViolation.
func (r *Repository) AddPostTag(ctx context.Context, postID, tagID int) error {
	_, err := r.db.ModelContext(ctx, &PostTag{PostID: postID, TagID: tagID}).Insert()
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("link post %d tag %d: %w", postID, tagID, ErrUniqueViolation)
		}
		return fmt.Errorf("failed to link post tag: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.IntegrityViolation() && pgErr.Field('C') == "23505"
	}
	return false
}
