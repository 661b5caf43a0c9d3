package shelf

import (
	"context"
	"fmt"

	"bookshelf/internal/catalog"
)

// View is a user's shelves with every reference resolved to its book.
type View struct {
	Read             []catalog.Book `json:"read"`
	CurrentlyReading []catalog.Book `json:"currentlyReading"`
	ToRead           []catalog.Book `json:"toRead"`
}

type Service struct {
	repo  Repository
	books catalog.Repository
	users UserDirectory
}

func NewService(repo Repository, books catalog.Repository, users UserDirectory) *Service {
	return &Service{repo: repo, books: books, users: users}
}

func (s *Service) requireUser(ctx context.Context, userID string) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// GetShelves returns the three shelves in insertion order. References whose
// book no longer resolves are left out.
func (s *Service) GetShelves(ctx context.Context, userID string) (View, error) {
	refs, err := s.repo.Shelves(ctx, userID)
	if err != nil {
		return View{}, err
	}

	var ids []string
	for _, n := range Names {
		ids = append(ids, refs.Get(n)...)
	}
	resolved, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return View{}, fmt.Errorf("resolve shelf books: %w", err)
	}

	populate := func(ids []string) []catalog.Book {
		out := make([]catalog.Book, 0, len(ids))
		for _, id := range ids {
			if b, ok := resolved[id]; ok {
				out = append(out, b)
			}
		}
		return out
	}

	return View{
		Read:             populate(refs.Read),
		CurrentlyReading: populate(refs.CurrentlyReading),
		ToRead:           populate(refs.ToRead),
	}, nil
}

// AddToShelf puts a cataloged book on one shelf. The user is checked first,
// then the shelf name, then the book. The catalog's id for the book is what
// gets stored.
func (s *Service) AddToShelf(ctx context.Context, userID, bookID, shelfName string) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	name, err := ParseName(shelfName)
	if err != nil {
		return err
	}
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	return s.repo.Add(ctx, userID, b.ID, name)
}

// MoveBook moves a book between shelves. The book lands on the destination
// shelf whether or not it was on the source shelf.
func (s *Service) MoveBook(ctx context.Context, userID, bookID, fromShelf, toShelf string) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	from, err := ParseName(fromShelf)
	if err != nil {
		return err
	}
	to, err := ParseName(toShelf)
	if err != nil {
		return err
	}
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	return s.repo.Move(ctx, userID, b.ID, from, to)
}
