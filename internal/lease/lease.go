package lease

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stauntonj/rently/internal/schedule"
)

// Status represents the lifecycle state of a lease.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// ErrNotFound is returned when a lease does not exist.
var ErrNotFound = errors.New("lease not found")

// Lease is a tenancy contract binding a tenant to a property.
type Lease struct {
	ID               uuid.UUID
	PropertyID       uuid.UUID
	TenantID         uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	PaymentStartDate *time.Time // overrides StartDate for the payment schedule
	MonthlyRent      decimal.Decimal
	SecurityDeposit  decimal.Decimal
	AgencyFee        decimal.Decimal
	Frequency        schedule.Frequency
	PaymentDay       int
	Active           bool
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// ScheduleStart returns the date the payment schedule anchors on: the payment
// start date when set, the lease start date otherwise.
func (l *Lease) ScheduleStart() time.Time {
	if l.PaymentStartDate != nil && !l.PaymentStartDate.IsZero() {
		return *l.PaymentStartDate
	}

	return l.StartDate
}
