package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Organization = strings.ToLower(strings.TrimSpace(filter.Organization))
	filter.Type = Species(strings.ToLower(strings.TrimSpace(string(filter.Type))))
	if filter.OwnerID < 0 {
		filter.OwnerID = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id int) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, ErrNotFound
	}
	return p, nil
}
