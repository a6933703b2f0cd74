package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stauntonj/rently/internal/payment"
	"github.com/stauntonj/rently/internal/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Materialize_Backfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	mtx := payment.NewMockMaterializeTx(ctrl)
	svc := payment.NewService(repo)

	leaseID := uuid.New()
	rent := decimal.NewFromInt(1000)

	repo.EXPECT().BeginMaterialize(gomock.Any(), leaseID).Return(mtx, nil)
	mtx.EXPECT().ExistingDueDates(gomock.Any(), leaseID).Return(nil, nil)

	var inserted []*payment.Payment

	mtx.EXPECT().
		CreatePayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ps []*payment.Payment) error {
			inserted = ps
			for _, p := range ps {
				p.ID = uuid.New()
			}
			return nil
		})
	mtx.EXPECT().Commit().Return(nil)
	mtx.EXPECT().Rollback().Return(nil)

	result, err := svc.Materialize(context.Background(), payment.MaterializeParams{
		LeaseID:    leaseID,
		RentAmount: rent,
		StartDate:  date(2024, 1, 1),
		Frequency:  schedule.FrequencyMonthly,
		AsOf:       date(2024, 4, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.CreatedCount)
	require.Len(t, inserted, 4)

	wantDates := []time.Time{date(2024, 1, 1), date(2024, 2, 1), date(2024, 3, 1), date(2024, 4, 1)}

	for i, p := range inserted {
		assert.Equal(t, wantDates[i], p.DueDate)
		assert.Equal(t, leaseID, p.LeaseID)
		assert.True(t, rent.Equal(p.Amount))
		assert.Equal(t, payment.StatusUndefined, p.Status)
		assert.Equal(t, payment.TypeRent, p.Type)
		assert.True(t, p.SystemGenerated)
		assert.Nil(t, p.PaymentDate)
		assert.Contains(t, p.Notes, "Generated automatically on")
	}
}

func TestService_Materialize_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	mtx := payment.NewMockMaterializeTx(ctrl)
	svc := payment.NewService(repo)

	leaseID := uuid.New()

	existing := []time.Time{
		date(2024, 1, 1), date(2024, 2, 1), date(2024, 3, 1), date(2024, 4, 1),
	}

	repo.EXPECT().BeginMaterialize(gomock.Any(), leaseID).Return(mtx, nil)
	mtx.EXPECT().ExistingDueDates(gomock.Any(), leaseID).Return(existing, nil)
	mtx.EXPECT().Rollback().Return(nil)

	result, err := svc.Materialize(context.Background(), payment.MaterializeParams{
		LeaseID:    leaseID,
		RentAmount: decimal.NewFromInt(1000),
		StartDate:  date(2024, 1, 1),
		Frequency:  schedule.FrequencyMonthly,
		AsOf:       date(2024, 4, 15),
	})
	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount)
	assert.Empty(t, result.Created)
}

func TestService_Materialize_FillsGapsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	mtx := payment.NewMockMaterializeTx(ctrl)
	svc := payment.NewService(repo)

	leaseID := uuid.New()

	// Existing rows carry a time-of-day; the diff must still match them.
	existing := []time.Time{
		time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().BeginMaterialize(gomock.Any(), leaseID).Return(mtx, nil)
	mtx.EXPECT().ExistingDueDates(gomock.Any(), leaseID).Return(existing, nil)
	mtx.EXPECT().
		CreatePayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ps []*payment.Payment) error {
			require.Len(t, ps, 2)
			assert.Equal(t, date(2024, 2, 1), ps[0].DueDate)
			assert.Equal(t, date(2024, 4, 1), ps[1].DueDate)
			return nil
		})
	mtx.EXPECT().Commit().Return(nil)
	mtx.EXPECT().Rollback().Return(nil)

	result, err := svc.Materialize(context.Background(), payment.MaterializeParams{
		LeaseID:    leaseID,
		RentAmount: decimal.NewFromInt(850),
		StartDate:  date(2024, 1, 1),
		Frequency:  schedule.FrequencyMonthly,
		AsOf:       date(2024, 4, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
}

func TestService_Materialize_InvalidFrequency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: validation fails before any store call.
	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	result, err := svc.Materialize(context.Background(), payment.MaterializeParams{
		LeaseID:    uuid.New(),
		RentAmount: decimal.NewFromInt(1000),
		StartDate:  date(2024, 1, 1),
		Frequency:  "biweekly_invalid",
		AsOf:       date(2024, 6, 1),
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidFrequency)
	assert.Nil(t, result)
}

func TestService_Materialize_StartInFuture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	result, err := svc.Materialize(context.Background(), payment.MaterializeParams{
		LeaseID:    uuid.New(),
		RentAmount: decimal.NewFromInt(1000),
		StartDate:  date(2030, 1, 1),
		Frequency:  schedule.FrequencyMonthly,
		AsOf:       date(2024, 1, 1),
	})
	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount)
}

func TestService_Materialize_InsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	mtx := payment.NewMockMaterializeTx(ctrl)
	svc := payment.NewService(repo)

	leaseID := uuid.New()

	repo.EXPECT().BeginMaterialize(gomock.Any(), leaseID).Return(mtx, nil)
	mtx.EXPECT().ExistingDueDates(gomock.Any(), leaseID).Return(nil, nil)
	mtx.EXPECT().CreatePayments(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	mtx.EXPECT().Rollback().Return(nil)

	result, err := svc.Materialize(context.Background(), payment.MaterializeParams{
		LeaseID:    leaseID,
		RentAmount: decimal.NewFromInt(1000),
		StartDate:  date(2024, 1, 1),
		Frequency:  schedule.FrequencyMonthly,
		AsOf:       date(2024, 2, 15),
	})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_ApplyBulkStatus_EmptySelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the empty selection is rejected before any store call.
	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	result, err := svc.ApplyBulkStatus(context.Background(), payment.BulkStatusParams{
		Status: payment.StatusCompleted,
	})
	assert.ErrorIs(t, err, payment.ErrEmptySelection)
	assert.Nil(t, result)
}

func TestService_ApplyBulkStatus_AuditTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	p1 := uuid.New()
	p2 := uuid.New()
	ids := []uuid.UUID{p1, p2}
	buID := uuid.New()

	repo.EXPECT().
		StatusesByID(gomock.Any(), ids).
		Return(map[uuid.UUID]payment.Status{
			p1: payment.StatusPending,
			p2: payment.StatusUndefined,
		}, nil)

	repo.EXPECT().
		CreateBulkUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bu *payment.BulkUpdate) error {
			assert.Equal(t, 2, bu.Count)
			assert.Equal(t, payment.StatusLate, bu.Status)
			assert.Equal(t, "overdue", bu.Note)
			bu.ID = buID
			return nil
		})

	repo.EXPECT().
		UpdateStatuses(gomock.Any(), ids, payment.StatusPatch{
			Status:      payment.StatusLate,
			Note:        "overdue",
			ProcessedBy: "agent@example.com",
		}).
		Return(2, nil)

	repo.EXPECT().
		CreateBulkUpdateItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items []payment.BulkUpdateItem) error {
			require.Len(t, items, 2)
			assert.Equal(t, buID, items[0].BulkUpdateID)
			assert.Equal(t, p1, items[0].PaymentID)
			assert.Equal(t, payment.StatusPending, items[0].PreviousStatus)
			assert.Equal(t, payment.StatusLate, items[0].NewStatus)
			assert.Equal(t, p2, items[1].PaymentID)
			assert.Equal(t, payment.StatusUndefined, items[1].PreviousStatus)
			assert.Equal(t, payment.StatusLate, items[1].NewStatus)
			return nil
		})

	result, err := svc.ApplyBulkStatus(context.Background(), payment.BulkStatusParams{
		PaymentIDs: ids,
		Status:     payment.StatusLate,
		Note:       "overdue",
		Actor:      "agent@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.UpdatedCount)
	assert.Equal(t, buID, result.BulkUpdateID)
}

func TestService_ApplyBulkStatus_HistoryBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	id := uuid.New()
	ids := []uuid.UUID{id}

	repo.EXPECT().
		StatusesByID(gomock.Any(), ids).
		Return(map[uuid.UUID]payment.Status{id: payment.StatusPending}, nil)
	repo.EXPECT().
		CreateBulkUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bu *payment.BulkUpdate) error {
			bu.ID = uuid.New()
			return nil
		})
	repo.EXPECT().
		UpdateStatuses(gomock.Any(), ids, gomock.Any()).
		Return(1, nil)
	repo.EXPECT().
		CreateBulkUpdateItems(gomock.Any(), gomock.Any()).
		Return(errors.New("history table unavailable"))

	// The payments were already updated; a history failure must not fail the call.
	result, err := svc.ApplyBulkStatus(context.Background(), payment.BulkStatusParams{
		PaymentIDs: ids,
		Status:     payment.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.UpdatedCount)
}

func TestService_ApplyBulkStatus_SnapshotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	ids := []uuid.UUID{uuid.New()}

	repo.EXPECT().StatusesByID(gomock.Any(), ids).Return(nil, errors.New("db down"))

	result, err := svc.ApplyBulkStatus(context.Background(), payment.BulkStatusParams{
		PaymentIDs: ids,
		Status:     payment.StatusLate,
	})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    payment.CreateParams
		setupMock func(m *payment.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: payment.CreateParams{
				LeaseID: uuid.New(),
				Amount:  decimal.NewFromInt(500),
				DueDate: time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC),
				Status:  payment.StatusPending,
				Type:    payment.TypeDeposit,
			},
			setupMock: func(m *payment.MockRepository) {
				m.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *payment.Payment) error {
						assert.Equal(t, date(2024, 5, 1), p.DueDate)
						p.ID = uuid.New()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			params: payment.CreateParams{
				LeaseID: uuid.New(),
				Amount:  decimal.NewFromInt(500),
				DueDate: date(2024, 5, 1),
			},
			setupMock: func(m *payment.MockRepository) {
				m.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := payment.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}
