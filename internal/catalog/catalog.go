package catalog

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateISBN is returned when a book with the same ISBN is already cataloged.
	ErrDuplicateISBN = errors.New("book already exists in library")
)

// Book is a catalog entry. ISBN is unique across the catalog and compared as
// an exact string.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	ISBN      string    `json:"isbn"`
	CreatedAt time.Time `json:"createdAt"`
}
