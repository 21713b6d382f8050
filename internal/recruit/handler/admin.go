package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifewood/careers-backend/internal/mailer"
	"github.com/lifewood/careers-backend/internal/recruit"
	"github.com/lifewood/careers-backend/internal/recruit/service"
	"github.com/lifewood/careers-backend/pkg/logger"
)

func (h *Handler) listApplications(c *gin.Context) {
	apps, err := h.svc.ListApplications(c.Request.Context())
	if err != nil {
		logger.Errorf("list applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not retrieve applications."})
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *Handler) getApplication(c *gin.Context) {
	app, err := h.svc.GetApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found."})
			return
		}
		logger.Errorf("get application: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred."})
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *Handler) updateApplication(c *gin.Context) {
	id := c.Param("id")
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields provided."})
		return
	}

	filtered, err := h.svc.UpdateApplication(c.Request.Context(), id, body)
	if err != nil {
		if errors.Is(err, service.ErrNoValidFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields provided."})
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found."})
			return
		}
		logger.Errorf("update application %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during update."})
		return
	}

	statusVal, hasStatus := filtered["status"]
	if !hasStatus {
		c.JSON(http.StatusOK, gin.H{"message": "Application updated successfully."})
		return
	}
	newStatus, _ := statusVal.(string)
	if !recruit.StatusNotifies(newStatus) {
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Status updated to '%s'.", newStatus)})
		return
	}

	// re-read the updated record so the email reflects what was stored
	app, err := h.svc.GetApplication(c.Request.Context(), id)
	if err != nil {
		logger.Errorf("reload application %s after update: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during update."})
		return
	}

	start, _ := body["interviewStartTime"].(string)
	end, _ := body["interviewEndTime"].(string)
	out := h.notifier.Send(c.Request.Context(), mailer.Notification{
		Recipient:      app.Email,
		ApplicantName:  app.FirstName,
		Position:       app.Position,
		Status:         newStatus,
		InterviewStart: start,
		InterviewEnd:   end,
	})
	// the field update is already committed either way; the code only
	// mirrors whether the email went out
	code := http.StatusOK
	if !out.Sent {
		code = http.StatusInternalServerError
	}
	c.JSON(code, gin.H{"message": out.Message})
}

func (h *Handler) deleteApplication(c *gin.Context) {
	if err := h.svc.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		logger.Errorf("delete application: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete application."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted."})
}

func (h *Handler) markApplicationsRead(c *gin.Context) {
	if _, err := h.svc.MarkApplicationsRead(c.Request.Context()); err != nil {
		logger.Errorf("mark applications read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not mark applications as read."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All new applications marked as read."})
}

func (h *Handler) applicationTrends(c *gin.Context) {
	report, err := h.svc.ApplicationTrends(c.Request.Context(), time.Now())
	if err != nil {
		logger.Errorf("application trends: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not retrieve application trends."})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) addPosition(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not add position."})
		return
	}
	if _, err := h.svc.AddPosition(c.Request.Context(), doc); err != nil {
		logger.Errorf("add position: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not add position."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Position added."})
}

func (h *Handler) deletePosition(c *gin.Context) {
	if err := h.svc.DeletePosition(c.Request.Context(), c.Param("id")); err != nil {
		logger.Errorf("delete position: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete position."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Position deleted."})
}

func (h *Handler) listInquiries(c *gin.Context) {
	inquiries, err := h.svc.ListInquiries(c.Request.Context())
	if err != nil {
		logger.Errorf("list inquiries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not retrieve inquiries."})
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

func (h *Handler) markInquiriesRead(c *gin.Context) {
	if _, err := h.svc.MarkInquiriesRead(c.Request.Context()); err != nil {
		logger.Errorf("mark inquiries read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not mark inquiries as read."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All new inquiries marked as read."})
}

func (h *Handler) deleteInquiry(c *gin.Context) {
	if err := h.svc.DeleteInquiry(c.Request.Context(), c.Param("id")); err != nil {
		logger.Errorf("delete inquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete inquiry."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted."})
}

func (h *Handler) me(c *gin.Context) {
	claims, _ := c.Get("claims")
	if h.staff != nil {
		if cm, ok := claims.(map[string]interface{}); ok {
			m, err := h.staff.UpsertFromClaims(c.Request.Context(), cm)
			if err == nil && m != nil {
				c.JSON(http.StatusOK, gin.H{"staff": m})
				return
			}
		}
	}
	// fallback: return claims
	c.JSON(http.StatusOK, gin.H{"claims": claims})
}
