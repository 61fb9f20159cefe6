// Package lookup resuelve las referencias de un draft (owner por id, organización por slug)
// contra las colecciones estáticas. Solo lectura: nunca muta nada y nunca falla;
// una referencia que no resuelve se muestra con un placeholder.
package lookup

import (
	"context"
	"strconv"
	"strings"

	"vetdesk/internal/domain/organizations"
	"vetdesk/internal/domain/owners"
)

const (
	PlaceholderNotSpecified = "not specified"
	PlaceholderNotFound     = "not found"

	NeutralColor = organizations.NeutralColor
)

// Badge es la metadata de display de una organización.
type Badge = organizations.Badge

// ResolveOrganization nunca falla: slug desconocido => iniciales + color neutro.
func ResolveOrganization(slug string) Badge {
	return organizations.BadgeFor(slug)
}

// OwnerReader y OrganizationReader son los puertos que usa el resolver
// (los cumplen owners.Service y organizations.Service).
type OwnerReader interface {
	GetByID(ctx context.Context, id int) (owners.Owner, error)
}

type OrganizationReader interface {
	GetBySlug(ctx context.Context, slug string) (organizations.Organization, error)
}

type Resolver struct {
	owners OwnerReader
	orgs   OrganizationReader
}

func NewResolver(ownerReader OwnerReader, orgReader OrganizationReader) *Resolver {
	return &Resolver{owners: ownerReader, orgs: orgReader}
}

// ResolveOwner parsea ownerIDText como entero y lo busca.
// Texto no numérico, id inexistente o error del repo => (Owner{}, false).
func (r *Resolver) ResolveOwner(ctx context.Context, ownerIDText string) (owners.Owner, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(ownerIDText))
	if err != nil || r.owners == nil {
		return owners.Owner{}, false
	}
	o, err := r.owners.GetByID(ctx, id)
	if err != nil {
		return owners.Owner{}, false
	}
	return o, true
}

// OwnerView es la referencia a owner lista para mostrar.
type OwnerView struct {
	ID    int    `json:"id,omitempty"`
	Label string `json:"label"`
	Email string `json:"email,omitempty"`
	Found bool   `json:"found"`
}

func (r *Resolver) Owner(ctx context.Context, ownerIDText string) OwnerView {
	if strings.TrimSpace(ownerIDText) == "" {
		return OwnerView{Label: PlaceholderNotSpecified}
	}
	o, ok := r.ResolveOwner(ctx, ownerIDText)
	if !ok {
		return OwnerView{Label: PlaceholderNotFound}
	}
	return OwnerView{ID: o.ID, Label: o.FullName(), Email: o.Email, Found: true}
}

// OrganizationView combina el badge con el nombre de la colección (si existe).
type OrganizationView struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Badge Badge  `json:"badge"`
	Found bool   `json:"found"`
}

func (r *Resolver) Organization(ctx context.Context, slug string) OrganizationView {
	slug = strings.TrimSpace(slug)
	v := OrganizationView{Slug: slug, Badge: ResolveOrganization(slug)}
	if slug == "" {
		v.Name = PlaceholderNotSpecified
		return v
	}
	if r.orgs == nil {
		v.Name = PlaceholderNotFound
		return v
	}
	o, err := r.orgs.GetBySlug(ctx, slug)
	if err != nil {
		v.Name = PlaceholderNotFound
		return v
	}
	v.Name = o.Name
	v.Found = true
	return v
}
