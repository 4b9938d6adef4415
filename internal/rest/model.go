package rest

import "time"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Comment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id"`
	UserID    *int      `json:"user_id,omitempty"`
	Text      string    `json:"text"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	Body          string    `json:"body"`
	IsActive      bool      `json:"is_active"`
	CategoryID    *int      `json:"category_id,omitempty"`
	Category      *Category `json:"category,omitempty"`
	Tags          []Tag     `json:"tags"`
	ViewsCount    int       `json:"views_count"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	MinsRead      int       `json:"mins_read"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PostSummary is the listing shape: identity fields only, no content.
type PostSummary struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type Weather struct {
	Coordinates     string  `json:"coordinates"`
	Temperature     float64 `json:"temperature"`
	Windspeed       float64 `json:"windspeed"`
	ObservationTime string  `json:"observation_time"`
}

type PostCreateRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Slug     string `json:"slug"`
	Content  string `json:"content"`
	IsActive *bool  `json:"is_active"`
}

type PostUpdateRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	IsActive *bool   `json:"is_active"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
