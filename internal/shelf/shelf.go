package shelf

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyInShelf = errors.New("already in this shelf")
	ErrInvalidShelf   = errors.New("invalid shelf name")
)

// Name identifies one of a user's three shelves.
type Name string

const (
	Read             Name = "read"
	CurrentlyReading Name = "currentlyReading"
	ToRead           Name = "toRead"
)

// Names lists every shelf in display order.
var Names = []Name{Read, CurrentlyReading, ToRead}

// ParseName accepts exactly the JSON names of the three shelves.
func ParseName(s string) (Name, error) {
	switch n := Name(s); n {
	case Read, CurrentlyReading, ToRead:
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidShelf, s)
}

// Refs holds the book ids on each shelf in insertion order. Shelves are
// independent: the same id may sit on more than one of them.
type Refs struct {
	Read             []string
	CurrentlyReading []string
	ToRead           []string
}

func (r *Refs) slot(n Name) *[]string {
	switch n {
	case Read:
		return &r.Read
	case CurrentlyReading:
		return &r.CurrentlyReading
	default:
		return &r.ToRead
	}
}

// Get returns the ids on shelf n.
func (r Refs) Get(n Name) []string {
	return *r.slot(n)
}

func (r Refs) contains(n Name, bookID string) bool {
	for _, id := range r.Get(n) {
		if id == bookID {
			return true
		}
	}
	return false
}

func (r *Refs) add(n Name, bookID string) {
	s := r.slot(n)
	*s = append(*s, bookID)
}

// removeAll drops every occurrence of bookID from shelf n.
func (r *Refs) removeAll(n Name, bookID string) {
	s := r.slot(n)
	kept := (*s)[:0]
	for _, id := range *s {
		if id != bookID {
			kept = append(kept, id)
		}
	}
	*s = kept
}

func (r Refs) clone() Refs {
	return Refs{
		Read:             append([]string(nil), r.Read...),
		CurrentlyReading: append([]string(nil), r.CurrentlyReading...),
		ToRead:           append([]string(nil), r.ToRead...),
	}
}
