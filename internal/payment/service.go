package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stauntonj/rently/internal/schedule"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, note string) error
	SettlePayment(ctx context.Context, id uuid.UUID, paidAt time.Time, method Method) error

	StatusesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Status, error)
	UpdateStatuses(ctx context.Context, ids []uuid.UUID, patch StatusPatch) (int, error)
	CreateBulkUpdate(ctx context.Context, bu *BulkUpdate) error
	CreateBulkUpdateItems(ctx context.Context, items []BulkUpdateItem) error

	BeginMaterialize(ctx context.Context, leaseID uuid.UUID) (MaterializeTx, error)
}

// MaterializeTx scopes the read-diff-insert sequence of a materialization to a
// single database transaction holding a per-lease lock.
type MaterializeTx interface {
	ExistingDueDates(ctx context.Context, leaseID uuid.UUID) ([]time.Time, error)
	CreatePayments(ctx context.Context, ps []*Payment) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	LeaseID uuid.UUID
	Amount  decimal.Decimal
	DueDate time.Time
	Status  Status
	Type    Type
	Notes   string
}

type ListFilter struct {
	LeaseID   *uuid.UUID
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}

// StatusPatch is applied to every payment in a batch status update.
type StatusPatch struct {
	Status      Status
	Note        string
	ProcessedBy string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Payment, error) {
	p := &Payment{
		LeaseID: params.LeaseID,
		Amount:  params.Amount,
		DueDate: schedule.Day(params.DueDate),
		Status:  params.Status,
		Type:    params.Type,
		Notes:   params.Notes,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, note string) error {
	return s.repo.UpdateStatus(ctx, id, status, note)
}

// Settle records the settlement of a single payment: payment date, method,
// and status completed.
func (s *Service) Settle(ctx context.Context, id uuid.UUID, paidAt time.Time, method Method) error {
	return s.repo.SettlePayment(ctx, id, paidAt, method)
}

type MaterializeParams struct {
	LeaseID    uuid.UUID
	RentAmount decimal.Decimal
	StartDate  time.Time
	Frequency  schedule.Frequency

	// AsOf bounds the generated sequence. Zero means now.
	AsOf time.Time
}

type MaterializeResult struct {
	CreatedCount int
	Created      []*Payment
}

// Materialize backfills the rent payments a lease should have accumulated
// between its payment start date and AsOf. Only due dates with no existing
// payment are inserted, so the operation is idempotent: a second call with
// unchanged inputs creates nothing.
//
// The existing-date read and the insert run in one store transaction holding a
// per-lease lock, so concurrent calls for the same lease cannot both insert
// the same date.
func (s *Service) Materialize(ctx context.Context, params MaterializeParams) (*MaterializeResult, error) {
	asOf := params.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	dueDates, err := schedule.DueDates(params.StartDate, params.Frequency, asOf)
	if err != nil {
		return nil, err
	}

	if len(dueDates) == 0 {
		return &MaterializeResult{}, nil
	}

	mtx, err := s.repo.BeginMaterialize(ctx, params.LeaseID)
	if err != nil {
		return nil, fmt.Errorf("begin materialize: %w", err)
	}
	defer mtx.Rollback()

	existing, err := mtx.ExistingDueDates(ctx, params.LeaseID)
	if err != nil {
		return nil, fmt.Errorf("load existing due dates: %w", err)
	}

	seen := make(map[time.Time]struct{}, len(existing))
	for _, d := range existing {
		seen[schedule.Day(d)] = struct{}{}
	}

	note := fmt.Sprintf("Generated automatically on %s", time.Now().UTC().Format(time.RFC3339))

	var missing []*Payment

	for _, due := range dueDates {
		if _, ok := seen[due]; ok {
			continue
		}

		missing = append(missing, &Payment{
			LeaseID:         params.LeaseID,
			Amount:          params.RentAmount,
			DueDate:         due,
			Status:          StatusUndefined,
			Type:            TypeRent,
			SystemGenerated: true,
			Notes:           note,
		})
	}

	if len(missing) == 0 {
		return &MaterializeResult{}, nil
	}

	if err := mtx.CreatePayments(ctx, missing); err != nil {
		return nil, fmt.Errorf("create payments: %w", err)
	}

	if err := mtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit materialize: %w", err)
	}

	return &MaterializeResult{CreatedCount: len(missing), Created: missing}, nil
}

type BulkStatusParams struct {
	PaymentIDs []uuid.UUID
	Status     Status
	Note       string
	Actor      string
}

type BulkStatusResult struct {
	UpdatedCount int
	BulkUpdateID uuid.UUID
}

// ApplyBulkStatus moves every targeted payment to a single new status and
// records a before/after audit item per payment.
//
// The before-snapshot and the audit-group row are written before the mutating
// update. The per-payment item insert is best-effort: if it fails after the
// payments were already updated, the failure is logged and the status change
// still reports success.
func (s *Service) ApplyBulkStatus(ctx context.Context, params BulkStatusParams) (*BulkStatusResult, error) {
	if len(params.PaymentIDs) == 0 {
		return nil, ErrEmptySelection
	}

	before, err := s.repo.StatusesByID(ctx, params.PaymentIDs)
	if err != nil {
		return nil, fmt.Errorf("snapshot statuses: %w", err)
	}

	bu := &BulkUpdate{
		Count:  len(params.PaymentIDs),
		Status: params.Status,
		Note:   params.Note,
		Actor:  params.Actor,
	}
	if err := s.repo.CreateBulkUpdate(ctx, bu); err != nil {
		return nil, fmt.Errorf("create bulk update: %w", err)
	}

	patch := StatusPatch{
		Status:      params.Status,
		Note:        params.Note,
		ProcessedBy: params.Actor,
	}

	updated, err := s.repo.UpdateStatuses(ctx, params.PaymentIDs, patch)
	if err != nil {
		return nil, fmt.Errorf("update statuses: %w", err)
	}

	items := make([]BulkUpdateItem, 0, len(params.PaymentIDs))

	for _, id := range params.PaymentIDs {
		prev, ok := before[id]
		if !ok {
			continue
		}

		items = append(items, BulkUpdateItem{
			BulkUpdateID:   bu.ID,
			PaymentID:      id,
			PreviousStatus: prev,
			NewStatus:      params.Status,
		})
	}

	if err := s.repo.CreateBulkUpdateItems(ctx, items); err != nil {
		slog.Warn("bulk update history insert failed", "bulk_update_id", bu.ID, "error", err)
	}

	return &BulkStatusResult{UpdatedCount: updated, BulkUpdateID: bu.ID}, nil
}
