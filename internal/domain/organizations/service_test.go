package organizations

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	bySlug   map[string]Organization
	lastSlug string
}

func (r *testRepo) List(ctx context.Context) ([]Organization, error) {
	out := make([]Organization, 0, len(r.bySlug))
	for _, o := range r.bySlug {
		out = append(out, o)
	}
	return out, nil
}

func (r *testRepo) GetBySlug(ctx context.Context, slug string) (Organization, error) {
	r.lastSlug = slug
	o, ok := r.bySlug[slug]
	if !ok {
		return Organization{}, errRepoNotFound
	}
	return o, nil
}

func TestService_GetBySlug_Normalizes(t *testing.T) {
	repo := &testRepo{bySlug: map[string]Organization{"mr-pet": {Slug: "mr-pet", Name: "Mr. Pet Veterinary"}}}
	svc := NewService(repo)

	o, err := svc.GetBySlug(context.Background(), "  MR-Pet ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastSlug != "mr-pet" || o.Name != "Mr. Pet Veterinary" {
		t.Fatalf("expected normalized slug lookup, got slug=%q org=%+v", repo.lastSlug, o)
	}
}

func TestService_GetBySlug_NotFound(t *testing.T) {
	repo := &testRepo{bySlug: map[string]Organization{}}
	svc := NewService(repo)

	if _, err := svc.GetBySlug(context.Background(), "unknown-slug"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	repo.lastSlug = "untouched"
	if _, err := svc.GetBySlug(context.Background(), "   "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank slug, got %v", err)
	}
	if repo.lastSlug != "untouched" {
		t.Fatalf("blank slug should not reach the repo")
	}
}

func TestBadgeFor(t *testing.T) {
	if b := BadgeFor("mr-pet"); b.Initials != "MP" || b.Color != "#1E88E5" {
		t.Fatalf("unexpected badge for mr-pet: %+v", b)
	}
	if b := BadgeFor("unknown-slug"); b.Initials != "UN" || b.Color != NeutralColor {
		t.Fatalf("unexpected fallback badge: %+v", b)
	}
}
