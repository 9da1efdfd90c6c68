package announcement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zenhr/zenhr-backend-go/internal/domain/announcement"
)

type Service struct {
	announcement.Repository
}

func NewService(announcements announcement.Repository) *Service {
	return &Service{Repository: announcements}
}

func (s *Service) Create(ctx context.Context, req announcement.CreateRequest, author string) (announcement.Response, error) {
	if err := req.Validate(); err != nil {
		return announcement.Response{}, err
	}
	created, err := s.Repository.Create(ctx, announcement.Announcement{
		ID:      uuid.NewString(),
		Title:   req.Title,
		Content: req.Content,
		Date:    time.Now().Format("2006-01-02"),
		Author:  author,
	})
	if err != nil {
		return announcement.Response{}, err
	}
	return announcement.ToResponse(created), nil
}

func (s *Service) List(ctx context.Context) ([]announcement.Response, error) {
	items, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]announcement.Response, 0, len(items))
	for _, a := range items {
		out = append(out, announcement.ToResponse(a))
	}
	return out, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}
