package shelf

import (
	"context"
	"fmt"
	"sync"
)

type userShelves struct {
	mu   sync.Mutex
	refs Refs
}

// MemoryRepo keeps shelves in process. Each user has a mutex held for the
// whole of an operation.
type MemoryRepo struct {
	users UserDirectory

	mu    sync.Mutex
	state map[string]*userShelves
}

func NewMemoryRepo(users UserDirectory) *MemoryRepo {
	return &MemoryRepo{
		users: users,
		state: make(map[string]*userShelves),
	}
}

func (r *MemoryRepo) lookup(ctx context.Context, userID string) (*userShelves, error) {
	ok, err := r.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, found := r.state[userID]
	if !found {
		s = &userShelves{}
		r.state[userID] = s
	}
	return s, nil
}

func (r *MemoryRepo) Shelves(ctx context.Context, userID string) (Refs, error) {
	s, err := r.lookup(ctx, userID)
	if err != nil {
		return Refs{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs.clone(), nil
}

func (r *MemoryRepo) Add(ctx context.Context, userID, bookID string, shelf Name) error {
	s, err := r.lookup(ctx, userID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs.contains(shelf, bookID) {
		return ErrAlreadyInShelf
	}
	s.refs.add(shelf, bookID)
	return nil
}

func (r *MemoryRepo) Move(ctx context.Context, userID, bookID string, from, to Name) error {
	s, err := r.lookup(ctx, userID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refs.removeAll(from, bookID)
	s.refs.add(to, bookID)
	return nil
}
