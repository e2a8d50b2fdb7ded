// Package email delivers reminders via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/debtnet/backend/internal/application/adapter"
)

// ResendClient implements the adapter.ReminderSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send delivers a reminder email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendReminderInput) (*adapter.SendReminderResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Text:    input.Body,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("resend delivery failed: %w", err)
	}

	return &adapter.SendReminderResult{
		ProviderID: resp.Id,
	}, nil
}

// MockReminderSender is a test double that records sent reminders.
type MockReminderSender struct {
	Sent       []adapter.SendReminderInput
	ShouldFail bool
	FailError  error
}

// NewMockReminderSender creates a new mock reminder sender.
func NewMockReminderSender() *MockReminderSender {
	return &MockReminderSender{
		Sent: make([]adapter.SendReminderInput, 0),
	}
}

// Send implements the adapter.ReminderSender interface for testing.
func (m *MockReminderSender) Send(ctx context.Context, input adapter.SendReminderInput) (*adapter.SendReminderResult, error) {
	if m.ShouldFail {
		return nil, m.FailError
	}

	m.Sent = append(m.Sent, input)

	return &adapter.SendReminderResult{
		ProviderID: fmt.Sprintf("mock-%d", len(m.Sent)),
	}, nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.ReminderSender = (*ResendClient)(nil)
	_ adapter.ReminderSender = (*MockReminderSender)(nil)
)
