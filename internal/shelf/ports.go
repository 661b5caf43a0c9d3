package shelf

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=shelf

// Repository stores shelf membership. Mutations for one user are
// linearizable: concurrent calls never lose each other's writes.
type Repository interface {
	// Shelves fails with ErrUserNotFound for an unknown user.
	Shelves(ctx context.Context, userID string) (Refs, error)
	// Add appends bookID to shelf. It fails with ErrAlreadyInShelf when
	// bookID is already on that shelf; other shelves are not consulted.
	Add(ctx context.Context, userID, bookID string, shelf Name) error
	// Move removes every occurrence of bookID from "from" and appends one to
	// "to". The append happens even if bookID was not on "from".
	Move(ctx context.Context, userID, bookID string, from, to Name) error
}

// UserDirectory answers whether an account exists.
type UserDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}
