package memory

import (
	"context"
	"sort"
	"strings"

	"vetdesk/internal/domain/owners"
)

type ownersRepo struct {
	byID map[int]owners.Owner
}

func NewOwnersRepo(items []owners.Owner) owners.Repository {
	byID := make(map[int]owners.Owner, len(items))
	for _, o := range items {
		byID[o.ID] = cloneOwner(o)
	}
	return &ownersRepo{byID: byID}
}

func (r *ownersRepo) List(ctx context.Context, filter owners.ListFilter) ([]owners.Owner, error) {
	q := strings.ToLower(filter.Query)

	out := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if filter.Organization != "" && o.Organization != filter.Organization {
			continue
		}
		if q != "" && !ownerMatches(o, q) {
			continue
		}
		out = append(out, cloneOwner(o))
	}

	// Orden estable por id (el mapa no tiene orden)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id int) (owners.Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, ErrNotFound
	}
	return cloneOwner(o), nil
}

func ownerMatches(o owners.Owner, q string) bool {
	if strings.Contains(strings.ToLower(o.FullName()), q) ||
		strings.Contains(strings.ToLower(o.Email), q) {
		return true
	}
	for _, p := range o.Phones {
		if strings.Contains(p, q) {
			return true
		}
	}
	return false
}

func cloneOwner(o owners.Owner) owners.Owner {
	o.Phones = append([]string{}, o.Phones...)
	return o
}
