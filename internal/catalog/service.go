package catalog

import (
	"context"
	"errors"
	"fmt"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// InsertBook adds a book to the catalog. The ISBN check here only gives an
// early answer; the repository enforces uniqueness on its own.
func (s *Service) InsertBook(ctx context.Context, title, imageURL, isbn string) (Book, error) {
	_, err := s.repo.GetByISBN(ctx, isbn)
	switch {
	case err == nil:
		return Book{}, ErrDuplicateISBN
	case !errors.Is(err, ErrNotFound):
		return Book{}, fmt.Errorf("lookup isbn: %w", err)
	}

	b := &Book{Title: title, ImageURL: imageURL, ISBN: isbn}
	if err := s.repo.Insert(ctx, b); err != nil {
		return Book{}, err
	}
	return *b, nil
}

// ListBooks returns the whole catalog.
func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// GetBook returns a single book by id.
func (s *Service) GetBook(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}
