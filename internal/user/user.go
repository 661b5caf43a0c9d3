package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

const RoleUser = "USER"

// User is an account. UserID is the external identity chosen at signup; it is
// what routes and tokens carry. ID is the internal row id.
type User struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userid"`
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	ProfilePicURL string    `json:"profilePicUrl,omitempty"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
