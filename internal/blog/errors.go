package blog

import "errors"

var (
	// ErrPostNotFound is returned when no post matches the given id or slug.
	ErrPostNotFound = errors.New("post not found")
	// ErrSlugTaken is returned when a create or title-changing update runs
	// into the unique slug constraint.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrInvalidInput is returned when a required field is missing or empty.
	ErrInvalidInput = errors.New("invalid input")
)
