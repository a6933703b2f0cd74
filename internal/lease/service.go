package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stauntonj/rently/internal/payment"
	"github.com/stauntonj/rently/internal/schedule"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lease
type Repository interface {
	// CreateLease writes the lease and its upfront charge payments in one
	// transaction.
	CreateLease(ctx context.Context, l *Lease, upfront []*payment.Payment) error
	GetLease(ctx context.Context, id uuid.UUID) (*Lease, error)
	ListLeases(ctx context.Context, filter ListFilter) ([]*Lease, error)
	UpdateLeaseStatus(ctx context.Context, id uuid.UUID, status Status, active bool) error
}

type Service struct {
	repo     Repository
	payments *payment.Service
}

func NewService(repo Repository, payments *payment.Service) *Service {
	return &Service{repo: repo, payments: payments}
}

type CreateParams struct {
	PropertyID       uuid.UUID
	TenantID         uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	PaymentStartDate *time.Time
	MonthlyRent      decimal.Decimal
	SecurityDeposit  decimal.Decimal
	AgencyFee        decimal.Decimal
	Frequency        schedule.Frequency
	PaymentDay       int
}

type ListFilter struct {
	Status *Status
	Active *bool
}

// Create validates the params, writes the lease, and creates the one-time
// deposit and agency-fee payments alongside it. The whole write is one store
// transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Lease, error) {
	if !params.Frequency.Valid() {
		return nil, fmt.Errorf("%w: %q", schedule.ErrInvalidFrequency, params.Frequency)
	}

	if params.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: missing start date", schedule.ErrInvalidDateRange)
	}

	if !params.EndDate.IsZero() && params.EndDate.Before(params.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", schedule.ErrInvalidDateRange)
	}

	if params.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("monthly rent must be positive, got %s", params.MonthlyRent)
	}

	l := &Lease{
		PropertyID:       params.PropertyID,
		TenantID:         params.TenantID,
		StartDate:        schedule.Day(params.StartDate),
		EndDate:          schedule.Day(params.EndDate),
		PaymentStartDate: params.PaymentStartDate,
		MonthlyRent:      params.MonthlyRent,
		SecurityDeposit:  params.SecurityDeposit,
		AgencyFee:        params.AgencyFee,
		Frequency:        params.Frequency,
		PaymentDay:       params.PaymentDay,
		Status:           StatusDraft,
	}

	if err := s.repo.CreateLease(ctx, l, upfrontCharges(l)); err != nil {
		return nil, err
	}

	return l, nil
}

// upfrontCharges builds the one-time payments owed at lease start. Zero
// amounts produce no charge.
func upfrontCharges(l *Lease) []*payment.Payment {
	var charges []*payment.Payment

	if l.SecurityDeposit.GreaterThan(decimal.Zero) {
		charges = append(charges, &payment.Payment{
			Amount:          l.SecurityDeposit,
			DueDate:         l.StartDate,
			Status:          payment.StatusPending,
			Type:            payment.TypeDeposit,
			SystemGenerated: true,
			Notes:           "Security deposit",
		})
	}

	if l.AgencyFee.GreaterThan(decimal.Zero) {
		charges = append(charges, &payment.Payment{
			Amount:          l.AgencyFee,
			DueDate:         l.StartDate,
			Status:          payment.StatusPending,
			Type:            payment.TypeAgencyFee,
			SystemGenerated: true,
			Notes:           "Agency fee",
		})
	}

	return charges
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Lease, error) {
	return s.repo.GetLease(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Lease, error) {
	return s.repo.ListLeases(ctx, filter)
}

// UpdateStatus moves the lease to a new lifecycle status. The active flag
// follows the status.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateLeaseStatus(ctx, id, status, status == StatusActive)
}

// Stats aggregates a lease's payment set for the dashboard.
type Stats struct {
	TotalPaid      decimal.Decimal
	TotalDue       decimal.Decimal
	Balance        decimal.Decimal
	PendingCount   int
	LateCount      int
	UndefinedCount int
}

// Stats derives paid/pending/late/undefined figures for a lease.
//
// TotalDue is the lease's single-period rent, not a sum over all generated
// payments; Balance = TotalDue - TotalPaid. This matches what the dashboard
// shows per billing period.
func (s *Service) Stats(ctx context.Context, leaseID uuid.UUID) (*Stats, error) {
	l, err := s.repo.GetLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	ps, err := s.payments.List(ctx, payment.ListFilter{LeaseID: &leaseID})
	if err != nil {
		return nil, fmt.Errorf("listing lease payments: %w", err)
	}

	stats := &Stats{
		TotalPaid: decimal.Zero,
		TotalDue:  l.MonthlyRent,
	}

	for _, p := range ps {
		switch p.Status {
		case payment.StatusCompleted:
			stats.TotalPaid = stats.TotalPaid.Add(p.Amount)
		case payment.StatusPending:
			stats.PendingCount++
		case payment.StatusLate:
			stats.LateCount++
		case payment.StatusUndefined:
			stats.UndefinedCount++
		}
	}

	stats.Balance = stats.TotalDue.Sub(stats.TotalPaid)

	return stats, nil
}
