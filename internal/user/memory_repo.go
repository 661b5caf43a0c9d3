package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.UserID]; exists {
		return ErrAlreadyExists
	}
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	if u.Role == "" {
		u.Role = RoleUser
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.UserID] = *u
	return nil
}

func (r *MemoryRepo) GetByUserID(_ context.Context, userID string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *MemoryRepo) Exists(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[userID]
	return ok, nil
}

func (r *MemoryRepo) UpdateUsername(_ context.Context, userID, username string) (User, error) {
	return r.update(userID, func(u *User) { u.Username = username })
}

func (r *MemoryRepo) UpdateProfilePic(_ context.Context, userID, url string) (User, error) {
	return r.update(userID, func(u *User) { u.ProfilePicURL = url })
}

func (r *MemoryRepo) update(userID string, apply func(*User)) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	apply(&u)
	u.UpdatedAt = time.Now().UTC()
	r.users[userID] = u
	return u, nil
}
