package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=user

type Repository interface {
	// Create fails with ErrAlreadyExists when UserID is taken.
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (User, error)
	Exists(ctx context.Context, userID string) (bool, error)
	UpdateUsername(ctx context.Context, userID, username string) (User, error)
	UpdateProfilePic(ctx context.Context, userID, url string) (User, error)
}
