package mailer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lifewood/careers-backend/internal/recruit"
)

type fakeSender struct {
	sent []Email
	err  error
}

func (f *fakeSender) Send(ctx context.Context, e Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, e)
	return nil
}

func TestDispatcherSendsRenderedEmail(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender)

	out := d.Send(context.Background(), Notification{
		Recipient:     "maria@example.com",
		ApplicantName: "Maria",
		Position:      "Data Annotator",
		Status:        recruit.StatusHired,
	})
	require.True(t, out.Sent)
	require.Equal(t, "Status updated to 'Hired' and email sent.", out.Message)

	require.Len(t, sender.sent, 1)
	e := sender.sent[0]
	require.Equal(t, "maria@example.com", e.To)
	require.Equal(t, "Maria", e.ToName)
	require.Equal(t, "An Exciting Update on Your Application with Lifewood", e.Subject)
	require.Contains(t, e.HTML, "Welcome to the Lifewood Team!")
}

func TestDispatcherNotConfigured(t *testing.T) {
	d := NewDispatcher(nil)

	out := d.Send(context.Background(), Notification{Recipient: "maria@example.com", Status: recruit.StatusHired})
	require.False(t, out.Sent)
	require.Equal(t, "Server is not configured for sending emails.", out.Message)
}

func TestDispatcherProviderFailure(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("451 rate limited")}
	d := NewDispatcher(sender)

	out := d.Send(context.Background(), Notification{
		Recipient: "maria@example.com", ApplicantName: "Maria",
		Position: "Data Annotator", Status: recruit.StatusRejected,
	})
	require.False(t, out.Sent)
	require.Equal(t, "Status updated, but email failed. Email provider error: 451 rate limited", out.Message)
	require.Empty(t, sender.sent)
}
