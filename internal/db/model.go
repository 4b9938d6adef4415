// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

func init() {
	// join tables for many-to-many relations
	orm.RegisterTable((*PostTag)(nil))
	orm.RegisterTable((*PostMedia)(nil))
}

var Columns = struct {
	Category struct {
		ID, Name, Slug string
	}
	Comment struct {
		ID, PostID, UserID, Text, IsActive, CreatedAt, UpdatedAt string

		Post, User string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Like struct {
		ID, PostID, UserID, CreatedAt string

		Post, User string
	}
	Media struct {
		ID, URL string
	}
	Post struct {
		ID, Title, Slug, Content, Body, IsActive, CategoryID,
		ViewsCount, LikesCount, CommentsCount, MinsRead,
		CreatedAt, UpdatedAt string

		Category, Tags string
	}
	PostMedia struct {
		PostID, MediaID string
	}
	PostTag struct {
		PostID, TagID string
	}
	Profession struct {
		ID, Name string
	}
	Tag struct {
		ID, Name, Slug string
	}
	User struct {
		ID, Username, ProfessionID string

		Profession string
	}
}{
	Category: struct {
		ID, Name, Slug string
	}{
		ID:   "id",
		Name: "name",
		Slug: "slug",
	},
	Comment: struct {
		ID, PostID, UserID, Text, IsActive, CreatedAt, UpdatedAt string

		Post, User string
	}{
		ID:        "id",
		PostID:    "post_id",
		UserID:    "user_id",
		Text:      "text",
		IsActive:  "is_active",
		CreatedAt: "created_at",
		UpdatedAt: "updated_at",

		Post: "Post",
		User: "User",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Like: struct {
		ID, PostID, UserID, CreatedAt string

		Post, User string
	}{
		ID:        "id",
		PostID:    "post_id",
		UserID:    "user_id",
		CreatedAt: "created_at",

		Post: "Post",
		User: "User",
	},
	Media: struct {
		ID, URL string
	}{
		ID:  "id",
		URL: "url",
	},
	Post: struct {
		ID, Title, Slug, Content, Body, IsActive, CategoryID,
		ViewsCount, LikesCount, CommentsCount, MinsRead,
		CreatedAt, UpdatedAt string

		Category, Tags string
	}{
		ID:            "id",
		Title:         "title",
		Slug:          "slug",
		Content:       "content",
		Body:          "body",
		IsActive:      "is_active",
		CategoryID:    "category_id",
		ViewsCount:    "views_count",
		LikesCount:    "likes_count",
		CommentsCount: "comments_count",
		MinsRead:      "mins_read",
		CreatedAt:     "created_at",
		UpdatedAt:     "updated_at",

		Category: "Category",
		Tags:     "Tags",
	},
	PostMedia: struct {
		PostID, MediaID string
	}{
		PostID:  "post_id",
		MediaID: "media_id",
	},
	PostTag: struct {
		PostID, TagID string
	}{
		PostID: "post_id",
		TagID:  "tag_id",
	},
	Profession: struct {
		ID, Name string
	}{
		ID:   "id",
		Name: "name",
	},
	Tag: struct {
		ID, Name, Slug string
	}{
		ID:   "id",
		Name: "name",
		Slug: "slug",
	},
	User: struct {
		ID, Username, ProfessionID string

		Profession string
	}{
		ID:           "id",
		Username:     "username",
		ProfessionID: "profession_id",

		Profession: "Profession",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Like struct {
		Name, Alias string
	}
	Media struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	PostMedia struct {
		Name, Alias string
	}
	PostTag struct {
		Name, Alias string
	}
	Profession struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Like: struct {
		Name, Alias string
	}{
		Name:  "likes",
		Alias: "t",
	},
	Media: struct {
		Name, Alias string
	}{
		Name:  "media",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	PostMedia: struct {
		Name, Alias string
	}{
		Name:  "post_media",
		Alias: "post_media",
	},
	PostTag: struct {
		Name, Alias string
	}{
		Name:  "post_tags",
		Alias: "post_tag",
	},
	Profession: struct {
		Name, Alias string
	}{
		Name:  "professions",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	PostID    int       `pg:"post_id,use_zero"`
	UserID    *int      `pg:"user_id"`
	Text      string    `pg:"text,use_zero"`
	IsActive  bool      `pg:"is_active,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
	UpdatedAt time.Time `pg:"updated_at,use_zero"`

	Post *Post `pg:"fk:post_id,rel:has-one"`
	User *User `pg:"fk:user_id,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Like struct {
	tableName struct{} `pg:"likes,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	PostID    int       `pg:"post_id,use_zero"`
	UserID    int       `pg:"user_id,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`

	Post *Post `pg:"fk:post_id,rel:has-one"`
	User *User `pg:"fk:user_id,rel:has-one"`
}

type Media struct {
	tableName struct{} `pg:"media,alias:t,discard_unknown_columns"`

	ID  int    `pg:"id,pk"`
	URL string `pg:"url,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID            int       `pg:"id,pk"`
	Title         string    `pg:"title,use_zero"`
	Slug          string    `pg:"slug,use_zero"`
	Content       string    `pg:"content,use_zero"`
	Body          string    `pg:"body,use_zero"`
	IsActive      bool      `pg:"is_active,use_zero"`
	CategoryID    *int      `pg:"category_id"`
	ViewsCount    int       `pg:"views_count,use_zero"`
	LikesCount    int       `pg:"likes_count,use_zero"`
	CommentsCount int       `pg:"comments_count,use_zero"`
	MinsRead      int       `pg:"mins_read,use_zero"`
	CreatedAt     time.Time `pg:"created_at,use_zero"`
	UpdatedAt     time.Time `pg:"updated_at,use_zero"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
	Tags     []Tag     `pg:"many2many:post_tags"`
}

// PostMedia keeps the default post_media alias: many2many queries join the
// association table against the base table, so it must not reuse "t".
type PostMedia struct {
	tableName struct{} `pg:"post_media,discard_unknown_columns"`

	PostID  int `pg:"post_id,pk"`
	MediaID int `pg:"media_id,pk"`

	Post  *Post  `pg:"fk:post_id,rel:has-one"`
	Media *Media `pg:"fk:media_id,rel:has-one"`
}

// PostTag keeps the default post_tag alias for the same reason as PostMedia.
type PostTag struct {
	tableName struct{} `pg:"post_tags,discard_unknown_columns"`

	PostID int `pg:"post_id,pk"`
	TagID  int `pg:"tag_id,pk"`

	Post *Post `pg:"fk:post_id,rel:has-one"`
	Tag  *Tag  `pg:"fk:tag_id,rel:has-one"`
}

type Profession struct {
	tableName struct{} `pg:"professions,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int    `pg:"id,pk"`
	Username     string `pg:"username,use_zero"`
	ProfessionID *int   `pg:"profession_id"`

	Profession *Profession `pg:"fk:profession_id,rel:has-one"`
}
