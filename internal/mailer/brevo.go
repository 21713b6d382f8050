package mailer

import (
	"context"

	brevo "github.com/getbrevo/brevo-go/lib"
)

// BrevoSender delivers email through the Brevo transactional API.
type BrevoSender struct {
	client      *brevo.APIClient
	senderName  string
	senderEmail string
}

func NewBrevoSender(apiKey, senderName, senderEmail string) *BrevoSender {
	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)
	return &BrevoSender{
		client:      brevo.NewAPIClient(cfg),
		senderName:  senderName,
		senderEmail: senderEmail,
	}
}

func (s *BrevoSender) Send(ctx context.Context, e Email) error {
	msg := brevo.SendSmtpEmail{
		Sender:      &brevo.SendSmtpEmailSender{Name: s.senderName, Email: s.senderEmail},
		To:          []brevo.SendSmtpEmailTo{{Email: e.To, Name: e.ToName}},
		Subject:     e.Subject,
		HtmlContent: e.HTML,
	}
	_, _, err := s.client.TransactionalEmailsApi.SendTransacEmail(ctx, msg)
	return err
}
