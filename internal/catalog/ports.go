package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=catalog

// Repository is the catalog store.
type Repository interface {
	// Insert assigns ID and CreatedAt. It fails with ErrDuplicateISBN atomically.
	Insert(ctx context.Context, b *Book) error
	// List returns every book in insertion order.
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	// GetByIDs resolves many ids at once. Unknown ids are absent from the result.
	GetByIDs(ctx context.Context, ids []string) (map[string]Book, error)
	Count(ctx context.Context) (int, error)
}
