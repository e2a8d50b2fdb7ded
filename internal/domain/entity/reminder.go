// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderKind identifies which of a debt's due-date reminders an event is.
type ReminderKind string

const (
	ReminderWeekBefore ReminderKind = "week_before"
	ReminderDayBefore  ReminderKind = "day_before"
	ReminderOnDueDate  ReminderKind = "on_due_date"
)

// ReminderKinds lists the reminder kinds in firing order.
var ReminderKinds = []ReminderKind{ReminderWeekBefore, ReminderDayBefore, ReminderOnDueDate}

// reminderIDSuffixes maps each kind to its stable identifier suffix.
var reminderIDSuffixes = map[ReminderKind]string{
	ReminderWeekBefore: "week",
	ReminderDayBefore:  "day",
	ReminderOnDueDate:  "due",
}

// ReminderEvent is a scheduled point-in-time notification tied to a debt's
// due date. Events are owned by the notification port; the scheduler fully
// recomputes them from debt state, so the ID must be deterministic for a
// given (debt, kind) pair.
type ReminderEvent struct {
	ID      string
	DebtID  uuid.UUID
	Kind    ReminderKind
	FireAt  time.Time
	Title   string
	Body    string
	Payload map[string]string
}

// ReminderEventID derives the stable event identifier for a debt and kind.
func ReminderEventID(debtID uuid.UUID, kind ReminderKind) string {
	return debtID.String() + "_" + reminderIDSuffixes[kind]
}

// ReminderEventIDsForDebt returns the identifiers of every event a debt can
// ever have, whether or not they are currently scheduled.
func ReminderEventIDsForDebt(debtID uuid.UUID) []string {
	ids := make([]string, 0, len(ReminderKinds))
	for _, kind := range ReminderKinds {
		ids = append(ids, ReminderEventID(debtID, kind))
	}
	return ids
}

// Offset returns the kind's firing offset relative to the due date.
func (k ReminderKind) Offset() time.Duration {
	switch k {
	case ReminderWeekBefore:
		return -7 * 24 * time.Hour
	case ReminderDayBefore:
		return -24 * time.Hour
	default:
		return 0
	}
}
