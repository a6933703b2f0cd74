package reconcile

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one incoming credit parsed from a bank statement: something a
// tenant paid that may settle an open rent payment.
type Entry struct {
	Date      time.Time
	Amount    decimal.Decimal
	Reference string
}
