package facades

import (
	"context"
	"fmt"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender is the subset of the SendGrid client used by the facade.
type SendGridSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// EmailFacade delivers transactional email through SendGrid. Delivery is
// fire-and-forget at the call sites: a failure is logged and never surfaces
// to the requester.
type EmailFacade struct {
	client    SendGridSender
	fromEmail string
}

// NewEmailFacade creates a new facade with a SendGrid client and sender address.
func NewEmailFacade(client SendGridSender, fromEmail string) *EmailFacade {
	return &EmailFacade{client: client, fromEmail: fromEmail}
}

// SendPasswordReset sends reset instructions containing the given link.
func (f *EmailFacade) SendPasswordReset(ctx context.Context, toEmail, resetLink string) error {
	from := mail.NewEmail("EstateFinder", f.fromEmail)
	to := mail.NewEmail("", toEmail)
	subject := "Password Reset Instructions"
	plain := fmt.Sprintf("You requested a password reset. Please use the following link to reset your password: %s", resetLink)
	html := fmt.Sprintf(`<p>You requested a password reset.</p><p>Please click <a href="%s">here</a> to reset your password.</p>`, resetLink)

	message := mail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := f.client.SendWithContext(ctx, message)
	if err != nil {
		logger.Log.Errorw("failed to send password reset email", "to", toEmail, "error", err)
		return err
	}

	logger.Log.Infow("password reset email sent", "to", toEmail, "status", resp.StatusCode)
	return nil
}
