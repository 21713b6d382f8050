package service

import (
	"context"
	"errors"

	"github.com/lifewood/careers-backend/internal/recruit"
	"github.com/lifewood/careers-backend/internal/recruit/repository"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNoValidFields = errors.New("no valid fields provided")
)

// Service wraps the three recruitment collections and implements the
// business rules the HTTP layer relies on (field whitelisting, trends).
type Service struct {
	apps      repository.ApplicationRepository
	inquiries repository.InquiryRepository
	positions repository.PositionRepository
}

func New(apps repository.ApplicationRepository, inquiries repository.InquiryRepository, positions repository.PositionRepository) *Service {
	return &Service{apps: apps, inquiries: inquiries, positions: positions}
}

func (s *Service) SubmitApplication(ctx context.Context, app *recruit.Application) (string, error) {
	return s.apps.Create(ctx, app)
}

func (s *Service) ListApplications(ctx context.Context) ([]*recruit.Application, error) {
	return s.apps.List(ctx)
}

func (s *Service) GetApplication(ctx context.Context, id string) (*recruit.Application, error) {
	a, err := s.apps.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// FilterUpdate drops every key outside the admin update whitelist.
func FilterUpdate(fields map[string]any) map[string]any {
	out := map[string]any{}
	for _, k := range recruit.UpdateWhitelist {
		if v, ok := fields[k]; ok {
			out[k] = v
		}
	}
	return out
}

// UpdateApplication applies a whitelisted partial update and returns the
// filtered field set that was actually written.
func (s *Service) UpdateApplication(ctx context.Context, id string, fields map[string]any) (map[string]any, error) {
	filtered := FilterUpdate(fields)
	if len(filtered) == 0 {
		return nil, ErrNoValidFields
	}
	if err := s.apps.Update(ctx, id, filtered); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return filtered, nil
}

func (s *Service) DeleteApplication(ctx context.Context, id string) error {
	return s.apps.Delete(ctx, id)
}

func (s *Service) MarkApplicationsRead(ctx context.Context) (int64, error) {
	return s.apps.MarkAllViewed(ctx)
}

func (s *Service) SubmitInquiry(ctx context.Context, inq *recruit.Inquiry) (string, error) {
	return s.inquiries.Create(ctx, inq)
}

func (s *Service) ListInquiries(ctx context.Context) ([]*recruit.Inquiry, error) {
	return s.inquiries.List(ctx)
}

func (s *Service) DeleteInquiry(ctx context.Context, id string) error {
	return s.inquiries.Delete(ctx, id)
}

func (s *Service) MarkInquiriesRead(ctx context.Context) (int64, error) {
	return s.inquiries.MarkAllViewed(ctx)
}

func (s *Service) AddPosition(ctx context.Context, doc map[string]any) (string, error) {
	return s.positions.Create(ctx, doc)
}

func (s *Service) ListPositions(ctx context.Context) ([]*recruit.Position, error) {
	return s.positions.List(ctx)
}

func (s *Service) DeletePosition(ctx context.Context, id string) error {
	return s.positions.Delete(ctx, id)
}
