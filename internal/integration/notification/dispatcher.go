// Package notification stores scheduled reminder events in Redis and
// dispatches the ones whose firing time has passed.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
)

// Dispatcher periodically pops due reminder events and delivers them.
// Delivery is best effort: a failed send is logged and dropped, since the
// full event set is recomputed on every ledger change anyway.
type Dispatcher struct {
	port         *RedisPort
	sender       adapter.ReminderSender
	userRepo     adapter.UserRepository
	pollInterval time.Duration
	batchSize    int
}

// DispatcherConfig holds configuration for the reminder dispatcher.
type DispatcherConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultDispatcherConfig returns the default dispatcher configuration.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		PollInterval: 30 * time.Second,
		BatchSize:    20,
	}
}

// NewDispatcher creates a new reminder dispatcher.
func NewDispatcher(port *RedisPort, sender adapter.ReminderSender, userRepo adapter.UserRepository, config DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		port:         port,
		sender:       sender,
		userRepo:     userRepo,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the dispatch loop. It blocks until the context is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	slog.Info("Reminder dispatcher started",
		"poll_interval", d.pollInterval,
		"batch_size", d.batchSize,
	)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	// Dispatch immediately on start, then on ticker
	d.dispatchBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder dispatcher shutting down")
			return
		case <-ticker.C:
			d.dispatchBatch(ctx)
		}
	}
}

// dispatchBatch pops and delivers a batch of due reminders.
func (d *Dispatcher) dispatchBatch(ctx context.Context) {
	events, err := d.port.PopDue(ctx, time.Now().UTC(), d.batchSize)
	if err != nil {
		slog.Error("Failed to pop due reminders", "error", err)
		return
	}

	if len(events) == 0 {
		return
	}

	slog.Debug("Dispatching reminder batch", "count", len(events))

	for _, event := range events {
		select {
		case <-ctx.Done():
			return
		default:
			d.dispatchEvent(ctx, event)
		}
	}
}

// dispatchEvent delivers a single reminder event to its debt's owner.
func (d *Dispatcher) dispatchEvent(ctx context.Context, event *entity.ReminderEvent) {
	logger := slog.With(
		"event_id", event.ID,
		"debt_id", event.DebtID,
		"kind", event.Kind,
	)

	userID, err := uuid.Parse(event.Payload["user_id"])
	if err != nil {
		logger.Warn("Reminder event has no valid owner, dropping")
		return
	}

	user, err := d.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Warn("Failed to resolve reminder recipient, dropping", "error", err)
		return
	}

	result, err := d.sender.Send(ctx, adapter.SendReminderInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: event.Title,
		Body:    event.Body,
	})
	if err != nil {
		logger.Error("Failed to deliver reminder", "error", err)
		return
	}

	logger.Info("Reminder delivered", "provider_id", result.ProviderID)
}

// DispatchNow dispatches all due reminders immediately (useful for testing).
func (d *Dispatcher) DispatchNow(ctx context.Context) {
	d.dispatchBatch(ctx)
}
