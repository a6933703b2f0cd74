package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/stauntonj/rently/internal/lease"
	"github.com/stauntonj/rently/internal/payment"
	"github.com/stauntonj/rently/internal/schedule"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectLeaseColumns = `
	l.id, l.property_id, l.tenant_id, l.start_date, l.end_date, l.payment_start_date,
	l.monthly_rent, l.security_deposit, l.agency_fee, l.frequency, l.payment_day,
	l.active, l.status, l.created_at, l.updated_at
`

func scanLease(s scanner) (*lease.Lease, error) {
	var l lease.Lease

	var freqStr, statusStr string

	if err := s.Scan(
		&l.ID, &l.PropertyID, &l.TenantID, &l.StartDate, &l.EndDate, &l.PaymentStartDate,
		&l.MonthlyRent, &l.SecurityDeposit, &l.AgencyFee, &freqStr, &l.PaymentDay,
		&l.Active, &statusStr, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.Frequency = schedule.Frequency(freqStr)
	l.Status = lease.Status(statusStr)

	return &l, nil
}

// CreateLease inserts the lease and its upfront charge payments atomically.
func (s *Store) CreateLease(ctx context.Context, l *lease.Lease, upfront []*payment.Payment) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning lease tx: %w", err)
	}
	defer dbTx.Rollback()

	leaseQuery := `
		INSERT INTO leases (property_id, tenant_id, start_date, end_date, payment_start_date,
			monthly_rent, security_deposit, agency_fee, frequency, payment_day, active, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, leaseQuery,
		l.PropertyID,
		l.TenantID,
		l.StartDate,
		l.EndDate,
		l.PaymentStartDate,
		l.MonthlyRent,
		l.SecurityDeposit,
		l.AgencyFee,
		l.Frequency,
		l.PaymentDay,
		l.Active,
		l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating lease: %w", err)
	}

	paymentQuery := `
		INSERT INTO payments (lease_id, amount, due_date, status, type, system_generated, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, p := range upfront {
		p.LeaseID = l.ID

		err := dbTx.QueryRowContext(ctx, paymentQuery,
			p.LeaseID,
			p.Amount,
			p.DueDate,
			p.Status,
			p.Type,
			p.SystemGenerated,
			p.Notes,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating upfront charge: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing lease tx: %w", err)
	}

	return nil
}

func (s *Store) GetLease(ctx context.Context, id uuid.UUID) (*lease.Lease, error) {
	query := `SELECT ` + selectLeaseColumns + ` FROM leases l WHERE l.id = $1`

	l, err := scanLease(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, lease.ErrNotFound
		}

		return nil, fmt.Errorf("getting lease: %w", err)
	}

	return l, nil
}

func (s *Store) ListLeases(ctx context.Context, filter lease.ListFilter) ([]*lease.Lease, error) {
	query := `SELECT ` + selectLeaseColumns + ` FROM leases l WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND l.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Active != nil {
		query += fmt.Sprintf(" AND l.active = $%d", argIdx)

		args = append(args, *filter.Active)
		argIdx++
	}

	query += " ORDER BY l.start_date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing leases: %w", err)
	}
	defer rows.Close()

	var ls []*lease.Lease

	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lease: %w", err)
		}

		ls = append(ls, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lease rows: %w", err)
	}

	return ls, nil
}

func (s *Store) UpdateLeaseStatus(ctx context.Context, id uuid.UUID, status lease.Status, active bool) error {
	query := `
		UPDATE leases
		SET status = $1, active = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, status, active, id)
	if err != nil {
		return fmt.Errorf("updating lease status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return lease.ErrNotFound
	}

	return nil
}
