// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendReminderInput holds everything needed to deliver one reminder.
type SendReminderInput struct {
	To      string
	Name    string
	Subject string
	Body    string
}

// SendReminderResult holds the provider's delivery identifier.
type SendReminderResult struct {
	ProviderID string
}

// ReminderSender delivers a due reminder to the user. The dispatcher calls
// it for each event whose firing time has passed; delivery failures are
// logged and dropped, never retried, because the event set is fully
// recomputed on the next ledger mutation.
type ReminderSender interface {
	Send(ctx context.Context, input SendReminderInput) (*SendReminderResult, error)
}
