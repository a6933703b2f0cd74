package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the settlement state of a payment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusLate      Status = "late"
	StatusCancelled Status = "cancelled"
	StatusUndefined Status = "undefined"
)

// Type distinguishes recurring rent from one-time charges.
type Type string

const (
	TypeRent      Type = "rent"
	TypeDeposit   Type = "deposit"
	TypeAgencyFee Type = "agency_fee"
)

// Method is how a payment was settled.
type Method string

const (
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank_transfer"
	MethodCard         Method = "card"
	MethodOther        Method = "other"
)

var (
	// ErrNotFound is returned when a payment does not exist.
	ErrNotFound = errors.New("payment not found")

	// ErrEmptySelection is returned when a bulk operation targets no payments.
	ErrEmptySelection = errors.New("no payments selected")
)

// Payment is one settlement record tied to exactly one lease. Payments are
// never deleted; only their status moves.
type Payment struct {
	ID              uuid.UUID
	LeaseID         uuid.UUID
	Amount          decimal.Decimal
	DueDate         time.Time
	PaymentDate     *time.Time // nil until settled
	Method          Method
	Status          Status
	Type            Type
	SystemGenerated bool
	Notes           string
	ProcessedBy     string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// BulkUpdate groups a set of simultaneous status transitions for auditing.
type BulkUpdate struct {
	ID        uuid.UUID
	Count     int
	Status    Status
	Note      string
	Actor     string
	CreatedAt time.Time
}

// BulkUpdateItem records one payment's transition inside a bulk update.
// Write-once.
type BulkUpdateItem struct {
	ID             uuid.UUID
	BulkUpdateID   uuid.UUID
	PaymentID      uuid.UUID
	PreviousStatus Status
	NewStatus      Status
}
