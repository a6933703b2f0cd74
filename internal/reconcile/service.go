package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stauntonj/rently/internal/payment"
	"github.com/stauntonj/rently/internal/schedule"
)

// DefaultWindow is how far a credit's date may sit from a payment's due date
// and still count as settling it.
const DefaultWindow = 7 * 24 * time.Hour

// openStatuses are the settlement states a credit can resolve.
var openStatuses = []payment.Status{
	payment.StatusUndefined,
	payment.StatusPending,
	payment.StatusLate,
}

type Service struct {
	payments *payment.Service
}

func NewService(payments *payment.Service) *Service {
	return &Service{payments: payments}
}

// Match pairs one statement entry with one open payment.
type Match struct {
	Entry   Entry
	Payment *payment.Payment
}

type Result struct {
	Matches   []Match
	Unmatched []Entry
	Settled   int
}

type Params struct {
	Entries []Entry

	// Window overrides DefaultWindow when positive.
	Window time.Duration

	// DryRun reports matches without settling anything.
	DryRun bool
}

// Reconcile matches statement credits against open rent payments by exact
// amount and due-date proximity, then settles the matched payments as bank
// transfers. Each entry settles at most one payment and each payment is
// settled by at most one entry; ambiguous credits prefer the closest due
// date. Unmatched entries are reported back, never guessed at.
func (s *Service) Reconcile(ctx context.Context, params Params) (*Result, error) {
	window := params.Window
	if window <= 0 {
		window = DefaultWindow
	}

	open, err := s.openPayments(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	taken := make(map[int]bool, len(open))

	for _, entry := range params.Entries {
		idx := closestOpenPayment(open, taken, entry, window)
		if idx < 0 {
			result.Unmatched = append(result.Unmatched, entry)
			continue
		}

		taken[idx] = true

		result.Matches = append(result.Matches, Match{Entry: entry, Payment: open[idx]})
	}

	if params.DryRun {
		return result, nil
	}

	for _, m := range result.Matches {
		if err := s.payments.Settle(ctx, m.Payment.ID, schedule.Day(m.Entry.Date), payment.MethodBankTransfer); err != nil {
			return result, fmt.Errorf("settling payment %s: %w", m.Payment.ID, err)
		}

		result.Settled++
	}

	return result, nil
}

func (s *Service) openPayments(ctx context.Context) ([]*payment.Payment, error) {
	var open []*payment.Payment

	for _, status := range openStatuses {
		ps, err := s.payments.List(ctx, payment.ListFilter{Status: &status})
		if err != nil {
			return nil, fmt.Errorf("listing %s payments: %w", status, err)
		}

		open = append(open, ps...)
	}

	sort.Slice(open, func(i, j int) bool { return open[i].DueDate.Before(open[j].DueDate) })

	return open, nil
}

// closestOpenPayment returns the index of the unclaimed rent payment with the
// entry's exact amount and the nearest due date inside the window, or -1.
func closestOpenPayment(open []*payment.Payment, taken map[int]bool, entry Entry, window time.Duration) int {
	best := -1

	var bestDistance time.Duration

	for i, p := range open {
		if taken[i] || p.Type != payment.TypeRent {
			continue
		}

		if !p.Amount.Equal(entry.Amount) {
			continue
		}

		distance := schedule.Day(entry.Date).Sub(schedule.Day(p.DueDate))
		if distance < 0 {
			distance = -distance
		}

		if distance > window {
			continue
		}

		if best < 0 || distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}

	return best
}
