package memory

import (
	"context"
	"sort"
	"strings"

	"vetdesk/internal/domain/pets"
)

type petRepo struct {
	byID map[int]pets.Pet
}

func NewPetRepo(items []pets.Pet) pets.Repository {
	byID := make(map[int]pets.Pet, len(items))
	for _, p := range items {
		byID[p.ID] = clonePet(p)
	}
	return &petRepo{byID: byID}
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	q := strings.ToLower(filter.Query)

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if filter.Organization != "" && p.Organization != filter.Organization {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.OwnerID != 0 && p.OwnerID != filter.OwnerID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Breed), q) &&
			!strings.Contains(strings.ToLower(p.Microchip), q) {
			continue
		}
		out = append(out, clonePet(p))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return clonePet(p), nil
}

func clonePet(p pets.Pet) pets.Pet {
	p.Allergies = append([]string{}, p.Allergies...)
	if p.BirthDate != nil {
		bd := *p.BirthDate
		p.BirthDate = &bd
	}
	return p
}
