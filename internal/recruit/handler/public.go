package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifewood/careers-backend/internal/mailer"
	"github.com/lifewood/careers-backend/internal/recruit"
	"github.com/lifewood/careers-backend/pkg/logger"
	"github.com/lifewood/careers-backend/pkg/metrics"
)

// applyForm are the required application fields; everything else submitted
// with the form is kept as free-form extra data.
type applyForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required"`
	Position  string `validate:"required"`
	Age       string `validate:"required"`
	Degree    string `validate:"required"`
}

var applyKnownFields = map[string]bool{
	"firstName": true, "lastName": true, "email": true,
	"position": true, "age": true, "degree": true,
}

func (h *Handler) apply(c *gin.Context) {
	form := applyForm{
		FirstName: strings.TrimSpace(c.PostForm("firstName")),
		LastName:  strings.TrimSpace(c.PostForm("lastName")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Position:  strings.TrimSpace(c.PostForm("position")),
		Age:       strings.TrimSpace(c.PostForm("age")),
		Degree:    strings.TrimSpace(c.PostForm("degree")),
	}
	if err := h.validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields."})
		return
	}

	app := &recruit.Application{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Position:  form.Position,
		Age:       form.Age,
		Degree:    form.Degree,
	}
	// carry any additional form fields along with the record
	for k, vals := range c.Request.PostForm {
		if applyKnownFields[k] || len(vals) == 0 {
			continue
		}
		if app.Extra == nil {
			app.Extra = map[string]any{}
		}
		app.Extra[k] = vals[0]
	}

	if fh, err := c.FormFile("resumeFile"); err == nil && fh.Filename != "" {
		if h.resumes == nil {
			logger.Error("resume upload requested but object storage is not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not submit application due to a server error."})
			return
		}
		f, err := fh.Open()
		if err != nil {
			logger.Errorf("open resume upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not submit application due to a server error."})
			return
		}
		defer f.Close()
		key := fmt.Sprintf("resumes/%s_%s_%d_%s",
			form.LastName, form.FirstName, time.Now().Unix(), filepath.Base(fh.Filename))
		if err := h.resumes.UploadFile(c.Request.Context(), key, f, fh.Size, fh.Header.Get("Content-Type")); err != nil {
			logger.Errorf("store resume %q: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not submit application due to a server error."})
			return
		}
		app.UploadedResumeURL = h.resumes.PublicURL(key)
	}

	if _, err := h.svc.SubmitApplication(c.Request.Context(), app); err != nil {
		logger.Errorf("persist application: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not submit application due to a server error."})
		return
	}
	metrics.IntakeReceived.WithLabelValues("application").Inc()

	// best effort: intake already succeeded, a failed email must not undo it
	h.notifier.Send(c.Request.Context(), mailer.Notification{
		Recipient:     app.Email,
		ApplicantName: app.FirstName,
		Position:      app.Position,
		Status:        recruit.StatusReceived,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully."})
}

func (h *Handler) listPositions(c *gin.Context) {
	positions, err := h.svc.ListPositions(c.Request.Context())
	if err != nil {
		logger.Errorf("list positions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not retrieve positions."})
		return
	}
	c.JSON(http.StatusOK, positions)
}

func (h *Handler) submitInquiry(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields."})
		return
	}

	inq := &recruit.Inquiry{Name: req.Name, Email: req.Email, Message: req.Message}
	if _, err := h.svc.SubmitInquiry(c.Request.Context(), inq); err != nil {
		logger.Errorf("persist inquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not submit inquiry."})
		return
	}
	metrics.IntakeReceived.WithLabelValues("inquiry").Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Inquiry submitted successfully!"})
}
