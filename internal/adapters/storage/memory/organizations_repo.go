package memory

import (
	"context"
	"errors"

	"vetdesk/internal/domain/organizations"
)

var (
	ErrNotFound = errors.New("not found")
)

type organizationsRepo struct {
	items []organizations.Organization
}

func NewOrganizationsRepo(items []organizations.Organization) organizations.Repository {
	cp := make([]organizations.Organization, len(items))
	copy(cp, items)
	return &organizationsRepo{items: cp}
}

func (r *organizationsRepo) List(ctx context.Context) ([]organizations.Organization, error) {
	out := make([]organizations.Organization, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *organizationsRepo) GetBySlug(ctx context.Context, slug string) (organizations.Organization, error) {
	for _, o := range r.items {
		if o.Slug == slug {
			return o, nil
		}
	}
	return organizations.Organization{}, ErrNotFound
}
