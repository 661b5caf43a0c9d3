package discussion

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("discussion not found")
	ErrInvalidInput = errors.New("invalid discussion input")
)

// Anonymous labels posts whose author gave no name.
const Anonymous = "Anonymous"

type Reply struct {
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Discussion is an append-only thread. Replies keep insertion order.
type Discussion struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Reply   `json:"replies"`
}
