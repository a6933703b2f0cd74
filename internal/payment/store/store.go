package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stauntonj/rently/internal/payment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectPaymentColumns = `
	p.id, p.lease_id, p.amount, p.due_date, p.payment_date, p.method, p.status, p.type,
	p.system_generated, p.notes, p.processed_by, p.created_at, p.updated_at
`

// scanPayment reads a payment row in selectPaymentColumns order.
func scanPayment(s scanner) (*payment.Payment, error) {
	var p payment.Payment

	var method, notes, processedBy sql.NullString

	var statusStr, typeStr string

	if err := s.Scan(
		&p.ID, &p.LeaseID, &p.Amount, &p.DueDate, &p.PaymentDate, &method, &statusStr, &typeStr,
		&p.SystemGenerated, &notes, &processedBy, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Method = payment.Method(method.String)
	p.Status = payment.Status(statusStr)
	p.Type = payment.Type(typeStr)
	p.Notes = notes.String
	p.ProcessedBy = processedBy.String

	return &p, nil
}

const insertPaymentQuery = `
	INSERT INTO payments (lease_id, amount, due_date, payment_date, method, status, type, system_generated, notes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''), NOW(), NOW())
	RETURNING id, created_at, updated_at
`

func (s *Store) CreatePayment(ctx context.Context, p *payment.Payment) error {
	err := s.db.QueryRowContext(ctx, insertPaymentQuery,
		p.LeaseID,
		p.Amount,
		p.DueDate,
		p.PaymentDate,
		string(p.Method),
		p.Status,
		p.Type,
		p.SystemGenerated,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments p WHERE p.id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments p WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.LeaseID != nil {
		query += fmt.Sprintf(" AND p.lease_id = $%d", argIdx)

		args = append(args, *filter.LeaseID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND p.due_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND p.due_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY p.due_date ASC, p.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var ps []*payment.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		ps = append(ps, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return ps, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status payment.Status, note string) error {
	query := `
		UPDATE payments
		SET status = $1, notes = COALESCE(NULLIF($2, ''), notes), updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, status, note, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return payment.ErrNotFound
	}

	return nil
}

func (s *Store) SettlePayment(ctx context.Context, id uuid.UUID, paidAt time.Time, method payment.Method) error {
	query := `
		UPDATE payments
		SET status = $1, payment_date = $2, method = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := s.db.ExecContext(ctx, query, payment.StatusCompleted, paidAt, method, id)
	if err != nil {
		return fmt.Errorf("settling payment: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return payment.ErrNotFound
	}

	return nil
}

func (s *Store) StatusesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]payment.Status, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]payment.Status{}, nil
	}

	query := `SELECT id, status FROM payments WHERE id = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, uuidArray(ids))
	if err != nil {
		return nil, fmt.Errorf("loading statuses: %w", err)
	}
	defer rows.Close()

	statuses := make(map[uuid.UUID]payment.Status, len(ids))

	for rows.Next() {
		var id uuid.UUID

		var status string

		if err := rows.Scan(&id, &status); err != nil {
			return nil, fmt.Errorf("scanning status: %w", err)
		}

		statuses[id] = payment.Status(status)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status rows: %w", err)
	}

	return statuses, nil
}

func (s *Store) UpdateStatuses(ctx context.Context, ids []uuid.UUID, patch payment.StatusPatch) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `
		UPDATE payments
		SET status = $1,
			notes = COALESCE(NULLIF($2, ''), notes),
			processed_by = COALESCE(NULLIF($3, ''), processed_by),
			updated_at = NOW()
		WHERE id = ANY($4)
	`

	res, err := s.db.ExecContext(ctx, query, patch.Status, patch.Note, patch.ProcessedBy, uuidArray(ids))
	if err != nil {
		return 0, fmt.Errorf("updating statuses: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting updated rows: %w", err)
	}

	return int(n), nil
}

func (s *Store) CreateBulkUpdate(ctx context.Context, bu *payment.BulkUpdate) error {
	query := `
		INSERT INTO bulk_updates (payment_count, status, note, actor, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, bu.Count, bu.Status, bu.Note, bu.Actor).
		Scan(&bu.ID, &bu.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating bulk update: %w", err)
	}

	return nil
}

func (s *Store) CreateBulkUpdateItems(ctx context.Context, items []payment.BulkUpdateItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO bulk_update_items (bulk_update_id, payment_id, previous_status, new_status)
		VALUES ($1, $2, $3, $4)
	`

	for i := range items {
		item := &items[i]
		if _, err := s.db.ExecContext(ctx, query, item.BulkUpdateID, item.PaymentID, item.PreviousStatus, item.NewStatus); err != nil {
			return fmt.Errorf("creating bulk update item: %w", err)
		}
	}

	return nil
}

// materializeLockKey derives a stable advisory lock key from the lease id so
// concurrent materializations of the same lease serialize.
func materializeLockKey(leaseID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("materialize"))
	h.Write([]byte{0})
	h.Write(leaseID[:])

	return int64(h.Sum64())
}

type materializeTx struct {
	tx *sql.Tx
}

func (s *Store) BeginMaterialize(ctx context.Context, leaseID uuid.UUID) (payment.MaterializeTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning materialize tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", materializeLockKey(leaseID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring materialize lock: %w", err)
	}

	return &materializeTx{tx: dbTx}, nil
}

func (mtx *materializeTx) Commit() error   { return mtx.tx.Commit() }
func (mtx *materializeTx) Rollback() error { return mtx.tx.Rollback() }

func (mtx *materializeTx) ExistingDueDates(ctx context.Context, leaseID uuid.UUID) ([]time.Time, error) {
	query := `SELECT due_date FROM payments WHERE lease_id = $1 AND type = $2`

	rows, err := mtx.tx.QueryContext(ctx, query, leaseID, payment.TypeRent)
	if err != nil {
		return nil, fmt.Errorf("loading due dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time

	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning due date: %w", err)
		}

		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating due date rows: %w", err)
	}

	return dates, nil
}

func (mtx *materializeTx) CreatePayments(ctx context.Context, ps []*payment.Payment) error {
	for _, p := range ps {
		err := mtx.tx.QueryRowContext(ctx, insertPaymentQuery,
			p.LeaseID,
			p.Amount,
			p.DueDate,
			p.PaymentDate,
			string(p.Method),
			p.Status,
			p.Type,
			p.SystemGenerated,
			p.Notes,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating payment: %w", err)
		}
	}

	return nil
}

// uuidArray renders ids as a Postgres array literal. The pgx stdlib driver
// does not bind []uuid.UUID directly through database/sql.
func uuidArray(ids []uuid.UUID) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}

	return "{" + strings.Join(strs, ",") + "}"
}
