package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is an in-process Repository. All state sits behind one mutex, so
// the ISBN check and the insert cannot interleave.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  []Book
	byID   map[string]int
	byISBN map[string]int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]int),
		byISBN: make(map[string]int),
	}
}

func (r *MemoryRepo) Insert(_ context.Context, b *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byISBN[b.ISBN]; exists {
		return ErrDuplicateISBN
	}

	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()

	r.books = append(r.books, *b)
	idx := len(r.books) - 1
	r.byID[b.ID] = idx
	r.byISBN[b.ISBN] = idx
	return nil
}

func (r *MemoryRepo) List(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return r.books[idx], nil
}

func (r *MemoryRepo) GetByISBN(_ context.Context, isbn string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byISBN[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	return r.books[idx], nil
}

func (r *MemoryRepo) GetByIDs(_ context.Context, ids []string) (map[string]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Book, len(ids))
	for _, id := range ids {
		if idx, ok := r.byID[id]; ok {
			out[id] = r.books[idx]
		}
	}
	return out, nil
}

func (r *MemoryRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}
