package mailer

import (
	"context"
	"fmt"

	"github.com/lifewood/careers-backend/pkg/logger"
	"github.com/lifewood/careers-backend/pkg/metrics"
)

// Notification describes one status email to an applicant.
type Notification struct {
	Recipient      string
	ApplicantName  string
	Position       string
	Status         string
	InterviewStart string
	InterviewEnd   string
}

// Outcome reports whether the email went out, with a human-readable message
// suitable for the API response.
type Outcome struct {
	Sent    bool
	Message string
}

// Email is a rendered message handed to a Sender.
type Email struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Sender delivers a rendered email through a transactional-email provider.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// Dispatcher renders status notifications and hands them to the configured
// Sender. Send never returns an error: a missing sender or a provider
// rejection is folded into the Outcome so the caller can finish the
// surrounding request ("record updated, but email failed").
type Dispatcher struct {
	sender Sender
}

// NewDispatcher builds a dispatcher. A nil sender means email is not
// configured; every Send then reports a misconfiguration without any
// network call.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

func (d *Dispatcher) Send(ctx context.Context, n Notification) Outcome {
	if d == nil || d.sender == nil {
		logger.Warn("email sender is not configured; notification skipped")
		return Outcome{Message: "Server is not configured for sending emails."}
	}

	subject, html := Render(n.ApplicantName, n.Position, n.Status, n.InterviewStart, n.InterviewEnd)
	err := d.sender.Send(ctx, Email{To: n.Recipient, ToName: n.ApplicantName, Subject: subject, HTML: html})
	if err != nil {
		logger.Errorf("notification to %s (status %q) failed: %v", n.Recipient, n.Status, err)
		metrics.NotificationsFailed.WithLabelValues(n.Status).Inc()
		return Outcome{Message: fmt.Sprintf("Status updated, but email failed. Email provider error: %v", err)}
	}
	metrics.NotificationsSent.WithLabelValues(n.Status).Inc()
	return Outcome{Sent: true, Message: fmt.Sprintf("Status updated to '%s' and email sent.", n.Status)}
}
