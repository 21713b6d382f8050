package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifewood/careers-backend/internal/recruit"
)

// MemoryApplicationRepo is an in-memory ApplicationRepository used by unit tests.
type MemoryApplicationRepo struct {
	mu    sync.RWMutex
	store map[string]*recruit.Application
}

func NewMemoryApplicationRepo() *MemoryApplicationRepo {
	return &MemoryApplicationRepo{store: make(map[string]*recruit.Application)}
}

func (m *MemoryApplicationRepo) Create(ctx context.Context, app *recruit.Application) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = time.Now().UTC()
	}
	app.Viewed = false
	if app.ID.IsZero() {
		app.ID = primitive.NewObjectID()
	}
	cp := *app
	m.store[app.ID.Hex()] = &cp
	return app.ID.Hex(), nil
}

func (m *MemoryApplicationRepo) List(ctx context.Context) ([]*recruit.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*recruit.Application, 0, len(m.store))
	for _, a := range m.store {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (m *MemoryApplicationRepo) Get(ctx context.Context, id string) (*recruit.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *MemoryApplicationRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			a.Status, _ = v.(string)
		case "notes":
			a.Notes, _ = v.(string)
		case "rating":
			switch n := v.(type) {
			case float64:
				a.Rating = n
			case int:
				a.Rating = float64(n)
			}
		case "interviewStartTime":
			a.InterviewStartTime, _ = v.(string)
		case "interviewEndTime":
			a.InterviewEndTime, _ = v.(string)
		case "viewed":
			a.Viewed, _ = v.(bool)
		default:
			if a.Extra == nil {
				a.Extra = map[string]any{}
			}
			a.Extra[k] = v
		}
	}
	return nil
}

func (m *MemoryApplicationRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

func (m *MemoryApplicationRepo) MarkAllViewed(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.store {
		if !a.Viewed {
			a.Viewed = true
			n++
		}
	}
	return n, nil
}

func (m *MemoryApplicationRepo) ListSubmittedSince(ctx context.Context, since time.Time) ([]*recruit.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*recruit.Application{}
	for _, a := range m.store {
		if !a.SubmittedAt.Before(since) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// MemoryInquiryRepo is an in-memory InquiryRepository used by unit tests.
type MemoryInquiryRepo struct {
	mu    sync.RWMutex
	store map[string]*recruit.Inquiry
}

func NewMemoryInquiryRepo() *MemoryInquiryRepo {
	return &MemoryInquiryRepo{store: make(map[string]*recruit.Inquiry)}
}

func (m *MemoryInquiryRepo) Create(ctx context.Context, inq *recruit.Inquiry) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inq.SubmittedAt = time.Now().UTC()
	inq.Viewed = false
	inq.ID = primitive.NewObjectID()
	cp := *inq
	m.store[inq.ID.Hex()] = &cp
	return inq.ID.Hex(), nil
}

func (m *MemoryInquiryRepo) List(ctx context.Context) ([]*recruit.Inquiry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*recruit.Inquiry, 0, len(m.store))
	for _, q := range m.store {
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (m *MemoryInquiryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

func (m *MemoryInquiryRepo) MarkAllViewed(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, q := range m.store {
		if !q.Viewed {
			q.Viewed = true
			n++
		}
	}
	return n, nil
}

// MemoryPositionRepo is an in-memory PositionRepository used by unit tests.
type MemoryPositionRepo struct {
	mu    sync.RWMutex
	store map[string]*recruit.Position
}

func NewMemoryPositionRepo() *MemoryPositionRepo {
	return &MemoryPositionRepo{store: make(map[string]*recruit.Position)}
}

func (m *MemoryPositionRepo) Create(ctx context.Context, doc map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &recruit.Position{ID: primitive.NewObjectID(), Attributes: map[string]any{}}
	for k, v := range doc {
		if k == "title" {
			p.Title, _ = v.(string)
			continue
		}
		p.Attributes[k] = v
	}
	m.store[p.ID.Hex()] = p
	return p.ID.Hex(), nil
}

func (m *MemoryPositionRepo) List(ctx context.Context) ([]*recruit.Position, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*recruit.Position, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *MemoryPositionRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}
