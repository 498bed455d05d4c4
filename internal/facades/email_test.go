package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
)

// --- Fake SendGrid client ---
type fakeSendGridClient struct {
	sent       []*mail.SGMailV3
	statusCode int
	err        error
}

func (f *fakeSendGridClient) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, email)
	return &rest.Response{StatusCode: f.statusCode}, nil
}

// --- Tests ---
func TestSendPasswordReset(t *testing.T) {
	client := &fakeSendGridClient{statusCode: 202}
	facade := NewEmailFacade(client, "noreply@estatefinder.local")

	err := facade.SendPasswordReset(context.Background(), "john@example.com", "http://localhost:8080/reset-password?token=abc")
	assert.NoError(t, err)
	assert.Len(t, client.sent, 1)

	message := client.sent[0]
	assert.Equal(t, "noreply@estatefinder.local", message.From.Address)
	assert.Equal(t, "Password Reset Instructions", message.Subject)
	assert.Len(t, message.Personalizations, 1)
	assert.Equal(t, "john@example.com", message.Personalizations[0].To[0].Address)

	var plain string
	for _, content := range message.Content {
		if content.Type == "text/plain" {
			plain = content.Value
		}
	}
	assert.Contains(t, plain, "http://localhost:8080/reset-password?token=abc")
}

func TestSendPasswordReset_Error(t *testing.T) {
	client := &fakeSendGridClient{err: errors.New("sendgrid unavailable")}
	facade := NewEmailFacade(client, "noreply@estatefinder.local")

	err := facade.SendPasswordReset(context.Background(), "john@example.com", "http://localhost:8080/reset-password?token=abc")
	assert.Error(t, err)
	assert.Empty(t, client.sent)
}
