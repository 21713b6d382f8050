package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lifewood/careers-backend/internal/recruit"
)

var ErrNotFound = errors.New("record not found")

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *recruit.Application) (string, error)
	List(ctx context.Context) ([]*recruit.Application, error)
	Get(ctx context.Context, id string) (*recruit.Application, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	MarkAllViewed(ctx context.Context) (int64, error)
	ListSubmittedSince(ctx context.Context, since time.Time) ([]*recruit.Application, error)
}

// InquiryRepository defines persistence operations for contact inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inq *recruit.Inquiry) (string, error)
	List(ctx context.Context) ([]*recruit.Inquiry, error)
	Delete(ctx context.Context, id string) error
	MarkAllViewed(ctx context.Context) (int64, error)
}

// PositionRepository defines persistence operations for open positions.
// Create accepts a raw document because staff may attach arbitrary attributes.
type PositionRepository interface {
	Create(ctx context.Context, doc map[string]any) (string, error)
	List(ctx context.Context) ([]*recruit.Position, error)
	Delete(ctx context.Context, id string) error
}
