package owners

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("owner not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Owner, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Organization = strings.ToLower(strings.TrimSpace(filter.Organization))
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id int) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrNotFound
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, ErrNotFound
	}
	return o, nil
}
