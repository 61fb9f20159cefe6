package organizations

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("organization not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Organization, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Organization, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return Organization{}, ErrNotFound
	}
	o, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return Organization{}, ErrNotFound
	}
	return o, nil
}
