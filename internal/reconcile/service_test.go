package reconcile_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stauntonj/rently/internal/payment"
	"github.com/stauntonj/rently/internal/reconcile"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expectOpenPayments(repo *payment.MockRepository, open map[payment.Status][]*payment.Payment) {
	for _, status := range []payment.Status{payment.StatusUndefined, payment.StatusPending, payment.StatusLate} {
		repo.EXPECT().
			ListPayments(gomock.Any(), payment.ListFilter{Status: &status}).
			Return(open[status], nil)
	}
}

func TestReconcile_MatchesAndSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := reconcile.NewService(payment.NewService(repo))

	rentMay := &payment.Payment{
		ID:      uuid.New(),
		Amount:  decimal.NewFromInt(850),
		DueDate: date(2024, 5, 1),
		Status:  payment.StatusUndefined,
		Type:    payment.TypeRent,
	}
	rentJune := &payment.Payment{
		ID:      uuid.New(),
		Amount:  decimal.NewFromInt(850),
		DueDate: date(2024, 6, 1),
		Status:  payment.StatusPending,
		Type:    payment.TypeRent,
	}

	expectOpenPayments(repo, map[payment.Status][]*payment.Payment{
		payment.StatusUndefined: {rentMay},
		payment.StatusPending:   {rentJune},
	})

	repo.EXPECT().
		SettlePayment(gomock.Any(), rentMay.ID, date(2024, 5, 2), payment.MethodBankTransfer).
		Return(nil)

	result, err := svc.Reconcile(context.Background(), reconcile.Params{
		Entries: []reconcile.Entry{
			{Date: date(2024, 5, 2), Amount: decimal.NewFromInt(850), Reference: "TRF RENDA MAIO"},
			{Date: date(2024, 5, 2), Amount: decimal.NewFromInt(999), Reference: "UNRELATED"},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, rentMay.ID, result.Matches[0].Payment.ID)
	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "UNRELATED", result.Unmatched[0].Reference)
	assert.Equal(t, 1, result.Settled)
}

func TestReconcile_PrefersClosestDueDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := reconcile.NewService(payment.NewService(repo))

	// Two open months at the same amount; the credit lands next to June.
	rentMay := &payment.Payment{
		ID:      uuid.New(),
		Amount:  decimal.NewFromInt(850),
		DueDate: date(2024, 5, 28),
		Status:  payment.StatusLate,
		Type:    payment.TypeRent,
	}
	rentJune := &payment.Payment{
		ID:      uuid.New(),
		Amount:  decimal.NewFromInt(850),
		DueDate: date(2024, 6, 1),
		Status:  payment.StatusPending,
		Type:    payment.TypeRent,
	}

	expectOpenPayments(repo, map[payment.Status][]*payment.Payment{
		payment.StatusPending: {rentJune},
		payment.StatusLate:    {rentMay},
	})

	result, err := svc.Reconcile(context.Background(), reconcile.Params{
		Entries: []reconcile.Entry{
			{Date: date(2024, 6, 2), Amount: decimal.NewFromInt(850)},
		},
		DryRun: true,
	})
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, rentJune.ID, result.Matches[0].Payment.ID)
	assert.Zero(t, result.Settled)
}

func TestReconcile_EachPaymentSettledOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := reconcile.NewService(payment.NewService(repo))

	rent := &payment.Payment{
		ID:      uuid.New(),
		Amount:  decimal.NewFromInt(850),
		DueDate: date(2024, 5, 1),
		Status:  payment.StatusPending,
		Type:    payment.TypeRent,
	}

	expectOpenPayments(repo, map[payment.Status][]*payment.Payment{
		payment.StatusPending: {rent},
	})

	result, err := svc.Reconcile(context.Background(), reconcile.Params{
		Entries: []reconcile.Entry{
			{Date: date(2024, 5, 1), Amount: decimal.NewFromInt(850)},
			{Date: date(2024, 5, 3), Amount: decimal.NewFromInt(850)},
		},
		DryRun: true,
	})
	require.NoError(t, err)
	assert.Len(t, result.Matches, 1)
	assert.Len(t, result.Unmatched, 1)
}

func TestReconcile_OutsideWindowUnmatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := reconcile.NewService(payment.NewService(repo))

	rent := &payment.Payment{
		ID:      uuid.New(),
		Amount:  decimal.NewFromInt(850),
		DueDate: date(2024, 5, 1),
		Status:  payment.StatusPending,
		Type:    payment.TypeRent,
	}

	expectOpenPayments(repo, map[payment.Status][]*payment.Payment{
		payment.StatusPending: {rent},
	})

	result, err := svc.Reconcile(context.Background(), reconcile.Params{
		Entries: []reconcile.Entry{
			{Date: date(2024, 5, 20), Amount: decimal.NewFromInt(850)},
		},
		DryRun: true,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.Len(t, result.Unmatched, 1)
}

func TestReconcile_SkipsNonRentPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := reconcile.NewService(payment.NewService(repo))

	deposit := &payment.Payment{
		ID:      uuid.New(),
		Amount:  decimal.NewFromInt(850),
		DueDate: date(2024, 5, 1),
		Status:  payment.StatusPending,
		Type:    payment.TypeDeposit,
	}

	expectOpenPayments(repo, map[payment.Status][]*payment.Payment{
		payment.StatusPending: {deposit},
	})

	result, err := svc.Reconcile(context.Background(), reconcile.Params{
		Entries: []reconcile.Entry{
			{Date: date(2024, 5, 1), Amount: decimal.NewFromInt(850)},
		},
		DryRun: true,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.Len(t, result.Unmatched, 1)
}
