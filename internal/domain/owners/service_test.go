package owners

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
	byID       map[int]Owner
	lastFilter ListFilter
	calls      int
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Owner, error) {
	r.lastFilter = filter
	return []Owner{}, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int) (Owner, error) {
	r.calls++
	o, ok := r.byID[id]
	if !ok {
		return Owner{}, errRepoNotFound
	}
	return o, nil
}

func TestService_ListNormalizesFilter(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if _, err := svc.List(context.Background(), ListFilter{Query: "  smith ", Organization: " Vet-Care "}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.Query != "smith" || repo.lastFilter.Organization != "vet-care" {
		t.Fatalf("filter not normalized: %+v", repo.lastFilter)
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &testRepo{byID: map[int]Owner{2: {ID: 2, FirstName: "John", LastName: "Smith"}}}
	svc := NewService(repo)

	if _, err := svc.GetByID(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), -1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for negative id, got %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("non-positive ids should not reach the repo, calls=%d", repo.calls)
	}

	o, err := svc.GetByID(context.Background(), 2)
	if err != nil || o.FullName() != "John Smith" {
		t.Fatalf("expected John Smith, got %+v err=%v", o, err)
	}
}
