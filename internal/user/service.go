package user

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, userID, username, hashedPassword string) (User, error) {
	_, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return User{}, ErrAlreadyExists
	case !errors.Is(err, ErrNotFound):
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	newUser := &User{
		UserID:   userID,
		Username: username,
		Password: hashedPassword,
		Role:     RoleUser,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}
	return *newUser, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (User, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	return s.repo.Exists(ctx, userID)
}

func (s *Service) UpdateUsername(ctx context.Context, userID, username string) (User, error) {
	return s.repo.UpdateUsername(ctx, userID, username)
}

func (s *Service) UpdateProfilePic(ctx context.Context, userID, url string) (User, error) {
	return s.repo.UpdateProfilePic(ctx, userID, url)
}
