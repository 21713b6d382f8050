package staff

import (
	"context"
	"testing"
	"time"
)

type fakeRepo struct {
	lastUpsert *Member
	upsertErr  error
}

func (f *fakeRepo) UpsertBySub(ctx context.Context, m *Member) (*Member, error) {
	f.lastUpsert = m
	// simulate repository behavior: ensure timestamps are set
	now := time.Now().UTC()
	if f.lastUpsert.CreatedAt.IsZero() {
		f.lastUpsert.CreatedAt = now
	}
	f.lastUpsert.UpdatedAt = now
	ret := *f.lastUpsert
	return &ret, f.upsertErr
}

func (f *fakeRepo) GetBySub(ctx context.Context, sub string) (*Member, error) {
	return nil, nil
}

func TestUpsertFromClaims(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()
	claims := map[string]interface{}{
		"sub":   "sub-123",
		"email": "hr@lifewood.com",
		"name":  "H R",
	}

	m, err := svc.UpsertFromClaims(ctx, claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected member, got nil")
	}
	if m.Sub != "sub-123" {
		t.Fatalf("unexpected sub: %s", m.Sub)
	}
	if m.Email != "hr@lifewood.com" {
		t.Fatalf("unexpected email: %s", m.Email)
	}
	if repo.lastUpsert == nil {
		t.Fatal("expected repository UpsertBySub to be called")
	}
	if repo.lastUpsert.CreatedAt.IsZero() || repo.lastUpsert.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set: created=%v updated=%v", repo.lastUpsert.CreatedAt, repo.lastUpsert.UpdatedAt)
	}

	// missing sub => no profile
	m2, err := svc.UpsertFromClaims(ctx, map[string]interface{}{"email": "y@e.com"})
	if err != nil {
		t.Fatalf("unexpected error on missing sub: %v", err)
	}
	if m2 != nil {
		t.Fatalf("expected nil when sub missing, got: %v", m2)
	}
}
