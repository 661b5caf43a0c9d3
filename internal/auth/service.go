package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/platform/crypto"
	"bookshelf/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	secret      string
	tokenTTL    time.Duration
	userService *user.Service
}

func NewService(secret string, tokenTTL time.Duration, userService *user.Service) *Service {
	return &Service{
		secret:      secret,
		tokenTTL:    tokenTTL,
		userService: userService,
	}
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

// Signup creates an account with empty shelves. It fails with
// user.ErrAlreadyExists when the userid is taken.
func (s *Service) Signup(ctx context.Context, userID, username, password string) (user.User, error) {
	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.userService.Register(ctx, userID, username, hashedPassword)
}

// Login checks the password and issues a bearer token carrying the userid.
// An unknown userid is user.ErrNotFound, a wrong password ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, userID, password string) (LoginResult, error) {
	u, err := s.userService.GetByUserID(ctx, userID)
	if err != nil {
		return LoginResult{}, err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(s.secret, u.UserID, u.Role, s.tokenTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResult{Token: token, UserID: u.UserID, Username: u.Username}, nil
}
