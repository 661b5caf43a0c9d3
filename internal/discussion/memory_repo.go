package discussion

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	threads []*Discussion
	byID    map[string]*Discussion
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]*Discussion)}
}

func copyDiscussion(d *Discussion) Discussion {
	out := *d
	out.Replies = append([]Reply{}, d.Replies...)
	return out
}

func (r *MemoryRepo) Create(_ context.Context, d *Discussion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = uuid.NewString()
	d.CreatedAt = time.Now().UTC()
	if d.Replies == nil {
		d.Replies = []Reply{}
	}

	stored := copyDiscussion(d)
	r.threads = append(r.threads, &stored)
	r.byID[d.ID] = &stored
	return nil
}

func (r *MemoryRepo) List(_ context.Context) ([]Discussion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Discussion, 0, len(r.threads))
	for i := len(r.threads) - 1; i >= 0; i-- {
		out = append(out, copyDiscussion(r.threads[i]))
	}
	return out, nil
}

func (r *MemoryRepo) AddReply(_ context.Context, discussionID string, reply Reply) (Discussion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[discussionID]
	if !ok {
		return Discussion{}, ErrNotFound
	}
	reply.CreatedAt = time.Now().UTC()
	d.Replies = append(d.Replies, reply)
	return copyDiscussion(d), nil
}
