package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/lifewood/careers-backend/internal/mailer"
	"github.com/lifewood/careers-backend/internal/recruit/service"
	"github.com/lifewood/careers-backend/internal/staff"
)

// ResumeStore is the slice of object storage the intake handler needs.
// Satisfied by *storage.MinIOStorage.
type ResumeStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// Notifier dispatches applicant status emails. Satisfied by *mailer.Dispatcher.
type Notifier interface {
	Send(ctx context.Context, n mailer.Notification) mailer.Outcome
}

// Handler carries the dependencies of the careers HTTP surface.
type Handler struct {
	svc      *service.Service
	resumes  ResumeStore // nil when object storage is not configured
	notifier Notifier
	staff    *staff.Service // nil when the staff collection is unavailable
	validate *validator.Validate
}

func New(svc *service.Service, resumes ResumeStore, notifier Notifier, staffSvc *staff.Service) *Handler {
	return &Handler{
		svc:      svc,
		resumes:  resumes,
		notifier: notifier,
		staff:    staffSvc,
		validate: validator.New(),
	}
}

// RegisterPublic mounts the unauthenticated intake endpoints.
func (h *Handler) RegisterPublic(r gin.IRouter) {
	r.POST("/api/apply", h.apply)
	r.GET("/api/positions", h.listPositions)
	r.POST("/api/inquiries", h.submitInquiry)
}

// RegisterAdmin mounts the staff endpoints behind the auth guard.
func (h *Handler) RegisterAdmin(r gin.IRouter, guard gin.HandlerFunc) {
	g := r.Group("/api", guard)
	g.GET("/applications", h.listApplications)
	g.POST("/applications/mark-as-read", h.markApplicationsRead)
	g.GET("/application/:id", h.getApplication)
	g.PUT("/application/:id", h.updateApplication)
	g.DELETE("/application/:id", h.deleteApplication)
	g.GET("/analytics/application-trends", h.applicationTrends)
	g.POST("/positions", h.addPosition)
	g.DELETE("/positions/:id", h.deletePosition)
	g.GET("/inquiries", h.listInquiries)
	g.POST("/inquiries/mark-as-read", h.markInquiriesRead)
	g.DELETE("/inquiries/:id", h.deleteInquiry)
	g.GET("/me", h.me)
}
