package discussion

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func orAnonymous(name string) string {
	if name = strings.TrimSpace(name); name == "" {
		return Anonymous
	}
	return name
}

// Start opens a thread. Title and content are required.
func (s *Service) Start(ctx context.Context, title, content, author string) (Discussion, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return Discussion{}, fmt.Errorf("%w: title and content required", ErrInvalidInput)
	}

	d := &Discussion{Title: title, Content: content, User: orAnonymous(author), Replies: []Reply{}}
	if err := s.repo.Create(ctx, d); err != nil {
		return Discussion{}, err
	}
	return *d, nil
}

func (s *Service) List(ctx context.Context) ([]Discussion, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Discussion{}
	}
	return list, nil
}

func (s *Service) Reply(ctx context.Context, discussionID, username, content string) (Discussion, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Discussion{}, fmt.Errorf("%w: content required", ErrInvalidInput)
	}
	return s.repo.AddReply(ctx, discussionID, Reply{Username: orAnonymous(username), Content: content})
}
