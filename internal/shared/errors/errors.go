package errors

import "errors"

var (
	// ErrMissingFeeds is returned when no feed configuration can be found
	ErrMissingFeeds = errors.New("feed configuration not found")

	// ErrNoCategories is returned when the feed configuration contains no categories
	ErrNoCategories = errors.New("feed configuration contains no categories")
)
