package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"

	"github.com/otabekov/blog-portal/internal/db"
)

var (
	testDB      *pg.DB
	testManager *Manager
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.RunMigrations(ctx, db.MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.EnsureTablesExist(ctx, testDB, []string{"posts", "tags", "categories", "post_tags", "comments"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testRepo := db.New(testDB)
	testManager = NewManager(testRepo)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

// reloadTestData restores the fixtures after a mutating test.
func reloadTestData(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		if err := db.LoadTestData(context.Background(), testDB); err != nil {
			t.Fatalf("failed to reload test data: %v", err)
		}
	})
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func nullBool(v bool) sql.NullBool {
	return sql.NullBool{Bool: v, Valid: true}
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

func assertPostsSorted(t *testing.T, posts []Post) {
	t.Helper()
	for i := 1; i < len(posts); i++ {
		prev, cur := posts[i-1], posts[i]
		if cur.CreatedAt.After(prev.CreatedAt) {
			t.Errorf("posts not sorted by created_at DESC at index %d", i)
		}
		if cur.CreatedAt.Equal(prev.CreatedAt) && cur.ID > prev.ID {
			t.Errorf("created_at tie not broken by id DESC at index %d", i)
		}
	}
}

func TestManager_PostsByFilter_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("WithoutFiltersReturnsAllPostsSorted", func(t *testing.T) {
		posts, err := testManager.PostsByFilter(ctx, db.PostFilter{})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}
		if len(posts) != 5 {
			t.Fatalf("expected 5 posts, got %d", len(posts))
		}
		assertPostsSorted(t, posts)
	})

	t.Run("WithIsActiveFilter", func(t *testing.T) {
		posts, err := testManager.PostsByFilter(ctx, db.PostFilter{IsActive: nullBool(false)})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 inactive post, got %d", len(posts))
		}
		if posts[0].Slug != "plov-for-beginners" {
			t.Errorf("unexpected inactive post %q", posts[0].Slug)
		}
	})

	t.Run("WithCategoryFilter", func(t *testing.T) {
		posts, err := testManager.PostsByFilter(ctx, db.PostFilter{CategoryID: nullInt(1)})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("expected 2 posts in category 1, got %d", len(posts))
		}
		for _, post := range posts {
			if post.CategoryID == nil || *post.CategoryID != 1 {
				t.Errorf("post %d has wrong category", post.ID)
			}
			if post.Category == nil {
				t.Errorf("post %d category not attached", post.ID)
			}
		}
	})

	t.Run("WithTagFilterDeduplicatesByPostID", func(t *testing.T) {
		// post 1 carries tags {1, 2}; filtering by either tag must return
		// it exactly once
		posts, err := testManager.PostsByFilter(ctx, db.PostFilter{TagID: nullInt(2)})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}

		seen := map[int]int{}
		for _, post := range posts {
			seen[post.ID]++
		}
		if seen[1] != 1 {
			t.Errorf("expected post 1 exactly once, got %d", seen[1])
		}
		if seen[2] != 1 {
			t.Errorf("expected post 2 exactly once, got %d", seen[2])
		}
		if len(posts) != 2 {
			t.Errorf("expected 2 posts for tag 2, got %d", len(posts))
		}
	})

	t.Run("FiltersCombineWithAND", func(t *testing.T) {
		posts, err := testManager.PostsByFilter(ctx, db.PostFilter{
			IsActive:   nullBool(true),
			CategoryID: nullInt(1),
			TagID:      nullInt(1),
		})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}
		if len(posts) != 1 || posts[0].ID != 1 {
			t.Fatalf("expected only post 1, got %+v", posts)
		}
	})

	t.Run("TagsAttached", func(t *testing.T) {
		posts, err := testManager.PostsByFilter(ctx, db.PostFilter{CategoryID: nullInt(1)})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}
		for _, post := range posts {
			if post.ID == 1 && len(post.Tags) != 2 {
				t.Errorf("expected 2 tags on post 1, got %d", len(post.Tags))
			}
		}
	})
}

func TestManager_PostBySlug_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		post, err := testManager.PostBySlug(ctx, "writing-a-blog-backend-in-go", nil)
		if err != nil {
			t.Fatalf("PostBySlug failed: %v", err)
		}
		if post.ID != 1 {
			t.Errorf("expected post 1, got %d", post.ID)
		}
		if post.Category == nil || post.Category.Name != "Technology" {
			t.Errorf("category not attached")
		}
		if len(post.Tags) != 2 {
			t.Errorf("expected 2 tags, got %d", len(post.Tags))
		}
	})

	t.Run("IsActiveFilterApplies", func(t *testing.T) {
		_, err := testManager.PostBySlug(ctx, "plov-for-beginners", boolPtr(true))
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound, got %v", err)
		}

		post, err := testManager.PostBySlug(ctx, "plov-for-beginners", nil)
		if err != nil {
			t.Fatalf("PostBySlug without filter failed: %v", err)
		}
		if post.IsActive {
			t.Error("expected inactive post")
		}
	})

	t.Run("MissingSlug", func(t *testing.T) {
		_, err := testManager.PostBySlug(ctx, "no-such-slug", nil)
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound, got %v", err)
		}
	})
}

func TestManager_CreatePost_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reloadTestData(t)

		post, err := testManager.CreatePost(ctx, CreatePostInput{
			Title:   "Brand New Post",
			Slug:    "brand-new-post",
			Content: "content",
			Body:    "body",
		})
		if err != nil {
			t.Fatalf("CreatePost failed: %v", err)
		}

		if post.ID == 0 {
			t.Error("expected server-assigned id")
		}
		if post.Slug != "brand-new-post" {
			t.Errorf("slug not stored verbatim: %q", post.Slug)
		}
		if !post.IsActive {
			t.Error("is_active should default to true")
		}
		if post.CreatedAt.IsZero() || post.UpdatedAt.IsZero() {
			t.Error("timestamps should be populated")
		}
	})

	t.Run("ExplicitInactive", func(t *testing.T) {
		reloadTestData(t)

		post, err := testManager.CreatePost(ctx, CreatePostInput{
			Title:    "Hidden Post",
			Slug:     "hidden-post",
			Content:  "content",
			IsActive: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("CreatePost failed: %v", err)
		}
		if post.IsActive {
			t.Error("expected inactive post")
		}
	})

	t.Run("DuplicateSlugConflict", func(t *testing.T) {
		before, err := testManager.PostsByFilter(ctx, db.PostFilter{})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}

		_, err = testManager.CreatePost(ctx, CreatePostInput{
			Title:   "Duplicate",
			Slug:    "writing-a-blog-backend-in-go",
			Content: "content",
		})
		if !errors.Is(err, ErrSlugTaken) {
			t.Fatalf("expected ErrSlugTaken, got %v", err)
		}

		after, err := testManager.PostsByFilter(ctx, db.PostFilter{})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}
		if len(after) != len(before) {
			t.Errorf("store changed after failed create: %d -> %d", len(before), len(after))
		}
	})

	t.Run("EmptyTitleRejected", func(t *testing.T) {
		_, err := testManager.CreatePost(ctx, CreatePostInput{Slug: "x", Content: "c"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("EmptySlugRejected", func(t *testing.T) {
		_, err := testManager.CreatePost(ctx, CreatePostInput{Title: "x", Content: "c"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestManager_UpdatePost_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("TitleChangeRegeneratesSlug", func(t *testing.T) {
		reloadTestData(t)

		before, err := testManager.PostBySlug(ctx, "writing-a-blog-backend-in-go", nil)
		if err != nil {
			t.Fatalf("PostBySlug failed: %v", err)
		}

		post, err := testManager.UpdatePost(ctx, 1, PostPatch{Title: strPtr("Hello, World!")})
		if err != nil {
			t.Fatalf("UpdatePost failed: %v", err)
		}

		if post.Title != "Hello, World!" {
			t.Errorf("title not applied: %q", post.Title)
		}
		if post.Slug != "hello-world" {
			t.Errorf("slug not regenerated: %q", post.Slug)
		}
		if !post.UpdatedAt.After(before.UpdatedAt) {
			t.Error("updated_at not refreshed")
		}
	})

	t.Run("EmptyBodyApplied", func(t *testing.T) {
		reloadTestData(t)

		post, err := testManager.UpdatePost(ctx, 1, PostPatch{Body: strPtr("")})
		if err != nil {
			t.Fatalf("UpdatePost failed: %v", err)
		}
		if post.Body != "" {
			t.Errorf("empty body not applied: %q", post.Body)
		}
		if post.Title != "Writing a Blog Backend in Go" {
			t.Errorf("title changed unexpectedly: %q", post.Title)
		}
	})

	t.Run("IsActiveFalseApplied", func(t *testing.T) {
		reloadTestData(t)

		post, err := testManager.UpdatePost(ctx, 1, PostPatch{IsActive: boolPtr(false)})
		if err != nil {
			t.Fatalf("UpdatePost failed: %v", err)
		}
		if post.IsActive {
			t.Error("is_active=false should be applied on presence")
		}
	})

	t.Run("AbsentFieldsLeftUnchanged", func(t *testing.T) {
		reloadTestData(t)

		post, err := testManager.UpdatePost(ctx, 2, PostPatch{})
		if err != nil {
			t.Fatalf("UpdatePost failed: %v", err)
		}
		if post.Title != "Indexing Strategies for Postgres" || post.Slug != "indexing-strategies-for-postgres" {
			t.Errorf("empty patch changed fields: %+v", post)
		}
	})

	t.Run("SlugCollisionConflict", func(t *testing.T) {
		reloadTestData(t)

		// regenerated slug collides with post 3
		_, err := testManager.UpdatePost(ctx, 1, PostPatch{Title: strPtr("A Week in the Mountains")})
		if !errors.Is(err, ErrSlugTaken) {
			t.Fatalf("expected ErrSlugTaken, got %v", err)
		}
	})

	t.Run("MissingPost", func(t *testing.T) {
		_, err := testManager.UpdatePost(ctx, 9999, PostPatch{Body: strPtr("x")})
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound, got %v", err)
		}
	})
}

func TestManager_DeletePost_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingPost", func(t *testing.T) {
		err := testManager.DeletePost(ctx, 9999)
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound, got %v", err)
		}
	})

	t.Run("RemovesPost", func(t *testing.T) {
		reloadTestData(t)

		if err := testManager.DeletePost(ctx, 3); err != nil {
			t.Fatalf("DeletePost failed: %v", err)
		}

		_, err := testManager.PostBySlug(ctx, "a-week-in-the-mountains", nil)
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
		}

		posts, err := testManager.PostsByFilter(ctx, db.PostFilter{})
		if err != nil {
			t.Fatalf("PostsByFilter failed: %v", err)
		}
		for _, post := range posts {
			if post.ID == 3 {
				t.Error("deleted post still listed")
			}
		}
	})
}

func TestManager_Listings_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("TagsOrderedByName", func(t *testing.T) {
		tags, err := testManager.Tags(ctx)
		if err != nil {
			t.Fatalf("Tags failed: %v", err)
		}
		if len(tags) != 4 {
			t.Fatalf("expected 4 tags, got %d", len(tags))
		}
		for i := 1; i < len(tags); i++ {
			if tags[i-1].Name > tags[i].Name {
				t.Errorf("tags not ordered by name at index %d", i)
			}
		}
	})

	t.Run("CategoriesOrderedByName", func(t *testing.T) {
		categories, err := testManager.Categories(ctx)
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		if len(categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(categories))
		}
		if categories[0].Name != "Food" {
			t.Errorf("expected Food first, got %q", categories[0].Name)
		}
	})
}

func TestManager_CommentsBySlug_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("AllComments", func(t *testing.T) {
		comments, err := testManager.CommentsBySlug(ctx, "writing-a-blog-backend-in-go", nil)
		if err != nil {
			t.Fatalf("CommentsBySlug failed: %v", err)
		}
		if len(comments) != 2 {
			t.Fatalf("expected 2 comments, got %d", len(comments))
		}
		if comments[0].CreatedAt.Before(comments[1].CreatedAt) {
			t.Error("comments not sorted newest first")
		}
	})

	t.Run("ActiveOnly", func(t *testing.T) {
		comments, err := testManager.CommentsBySlug(ctx, "writing-a-blog-backend-in-go", boolPtr(true))
		if err != nil {
			t.Fatalf("CommentsBySlug failed: %v", err)
		}
		if len(comments) != 1 {
			t.Fatalf("expected 1 active comment, got %d", len(comments))
		}
	})

	t.Run("MissingPost", func(t *testing.T) {
		_, err := testManager.CommentsBySlug(ctx, "no-such-slug", nil)
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound, got %v", err)
		}
	})
}
