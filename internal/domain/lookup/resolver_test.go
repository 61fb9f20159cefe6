package lookup

import (
	"context"
	"errors"
	"testing"

	"vetdesk/internal/domain/organizations"
	"vetdesk/internal/domain/owners"

	"github.com/stretchr/testify/assert"
)

type fakeOwners map[int]owners.Owner

func (f fakeOwners) GetByID(_ context.Context, id int) (owners.Owner, error) {
	o, ok := f[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

type fakeOrgs map[string]organizations.Organization

func (f fakeOrgs) GetBySlug(_ context.Context, slug string) (organizations.Organization, error) {
	o, ok := f[slug]
	if !ok {
		return organizations.Organization{}, organizations.ErrNotFound
	}
	return o, nil
}

type brokenOwners struct{}

func (brokenOwners) GetByID(context.Context, int) (owners.Owner, error) {
	return owners.Owner{}, errors.New("connection refused")
}

func newTestResolver() *Resolver {
	return NewResolver(
		fakeOwners{1: {ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"}},
		fakeOrgs{"mr-pet": {Slug: "mr-pet", Name: "Mr. Pet Veterinary"}},
	)
}

func TestResolveOrganization(t *testing.T) {
	assert.Equal(t, Badge{Initials: "MP", Color: "#1E88E5"}, ResolveOrganization("mr-pet"))
	assert.Equal(t, Badge{Initials: "AH", Color: "#8E24AA"}, ResolveOrganization("animal-hospital"))

	assert.Equal(t, Badge{Initials: "UN", Color: NeutralColor}, ResolveOrganization("unknown-slug"))
	assert.Equal(t, Badge{Initials: "ÑA", Color: NeutralColor}, ResolveOrganization("ñandu"))
	assert.Equal(t, Badge{Initials: "X", Color: NeutralColor}, ResolveOrganization("x"))
	assert.Equal(t, Badge{Initials: "", Color: NeutralColor}, ResolveOrganization(""))
}

func TestResolveOwner(t *testing.T) {
	res := newTestResolver()
	ctx := context.Background()

	o, ok := res.ResolveOwner(ctx, " 1 ")
	assert.True(t, ok)
	assert.Equal(t, "Ann Lee", o.FullName())

	_, ok = res.ResolveOwner(ctx, "9999")
	assert.False(t, ok)

	_, ok = res.ResolveOwner(ctx, "abc")
	assert.False(t, ok)

	_, ok = NewResolver(brokenOwners{}, nil).ResolveOwner(ctx, "1")
	assert.False(t, ok, "un error del repo se trata como not found")

	_, ok = NewResolver(nil, nil).ResolveOwner(ctx, "1")
	assert.False(t, ok)
}

func TestOwnerView_Placeholders(t *testing.T) {
	res := newTestResolver()
	ctx := context.Background()

	assert.Equal(t, OwnerView{Label: PlaceholderNotSpecified}, res.Owner(ctx, "  "))
	assert.Equal(t, OwnerView{Label: PlaceholderNotFound}, res.Owner(ctx, "9999"))
	assert.Equal(t, OwnerView{ID: 1, Label: "Ann Lee", Email: "ann@example.com", Found: true}, res.Owner(ctx, "1"))
}

func TestOrganizationView(t *testing.T) {
	res := newTestResolver()
	ctx := context.Background()

	v := res.Organization(ctx, "mr-pet")
	assert.True(t, v.Found)
	assert.Equal(t, "Mr. Pet Veterinary", v.Name)
	assert.Equal(t, "MP", v.Badge.Initials)

	v = res.Organization(ctx, "unknown-slug")
	assert.False(t, v.Found)
	assert.Equal(t, PlaceholderNotFound, v.Name)
	assert.Equal(t, Badge{Initials: "UN", Color: NeutralColor}, v.Badge)

	v = res.Organization(ctx, "")
	assert.Equal(t, PlaceholderNotSpecified, v.Name)

	v = NewResolver(nil, nil).Organization(ctx, "vet-care")
	assert.Equal(t, PlaceholderNotFound, v.Name)
	assert.Equal(t, "VC", v.Badge.Initials)
}
