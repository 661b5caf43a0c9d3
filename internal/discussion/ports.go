package discussion

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=discussion

type Repository interface {
	Create(ctx context.Context, d *Discussion) error
	// List returns every discussion, newest first, replies included.
	List(ctx context.Context) ([]Discussion, error)
	// AddReply appends to the thread and returns it. Unknown ids fail with ErrNotFound.
	AddReply(ctx context.Context, discussionID string, reply Reply) (Discussion, error)
}
