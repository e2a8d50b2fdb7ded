package reminder

import (
	"fmt"

	"github.com/debtnet/backend/internal/domain/entity"
)

// titleFor returns the notification title for a reminder kind.
func titleFor(kind entity.ReminderKind) string {
	switch kind {
	case entity.ReminderWeekBefore:
		return "Debt reminder"
	case entity.ReminderDayBefore:
		return "Urgent debt reminder"
	default:
		return "Payment due today!"
	}
}

// bodyFor builds the notification body. The amount shown includes accrued
// interest, since that is what is actually due.
func bodyFor(kind entity.ReminderKind, debt *entity.Debt) string {
	amount := debt.AmountWithInterest().StringFixed(2)

	switch kind {
	case entity.ReminderWeekBefore:
		if debt.Type == entity.DebtTypeOwedToMe {
			return fmt.Sprintf("The debt is due in a week. %s owes you %s.", debt.DebtorName, amount)
		}
		return fmt.Sprintf("The payment is due in a week. You owe %s %s.", debt.DebtorName, amount)
	case entity.ReminderDayBefore:
		if debt.Type == entity.DebtTypeOwedToMe {
			return fmt.Sprintf("The debt is due tomorrow! %s owes you %s.", debt.DebtorName, amount)
		}
		return fmt.Sprintf("The payment is due tomorrow! You owe %s %s.", debt.DebtorName, amount)
	default:
		if debt.Type == entity.DebtTypeOwedToMe {
			return fmt.Sprintf("Today is the last day! %s owes you %s.", debt.DebtorName, amount)
		}
		return fmt.Sprintf("Today is the payment deadline! You owe %s %s.", debt.DebtorName, amount)
	}
}
