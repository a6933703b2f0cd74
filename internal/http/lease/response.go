package lease

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stauntonj/rently/internal/lease"
	"github.com/stauntonj/rently/internal/payment"
	"github.com/stauntonj/rently/internal/schedule"
)

type leaseResponse struct {
	ID               uuid.UUID          `json:"id"`
	PropertyID       uuid.UUID          `json:"property_id"`
	TenantID         uuid.UUID          `json:"tenant_id"`
	StartDate        time.Time          `json:"start_date"`
	EndDate          time.Time          `json:"end_date"`
	PaymentStartDate *time.Time         `json:"payment_start_date,omitempty"`
	MonthlyRent      decimal.Decimal    `json:"monthly_rent"`
	SecurityDeposit  decimal.Decimal    `json:"security_deposit"`
	AgencyFee        decimal.Decimal    `json:"agency_fee"`
	Frequency        schedule.Frequency `json:"frequency"`
	PaymentDay       int                `json:"payment_day"`
	Active           bool               `json:"active"`
	Status           lease.Status       `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(l *lease.Lease) leaseResponse {
	return leaseResponse{
		ID:               l.ID,
		PropertyID:       l.PropertyID,
		TenantID:         l.TenantID,
		StartDate:        l.StartDate,
		EndDate:          l.EndDate,
		PaymentStartDate: l.PaymentStartDate,
		MonthlyRent:      l.MonthlyRent,
		SecurityDeposit:  l.SecurityDeposit,
		AgencyFee:        l.AgencyFee,
		Frequency:        l.Frequency,
		PaymentDay:       l.PaymentDay,
		Active:           l.Active,
		Status:           l.Status,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func toResponseList(ls []*lease.Lease) []leaseResponse {
	resp := make([]leaseResponse, len(ls))
	for i, l := range ls {
		resp[i] = toResponse(l)
	}

	return resp
}

type statsResponse struct {
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalDue       decimal.Decimal `json:"total_due"`
	Balance        decimal.Decimal `json:"balance"`
	PendingCount   int             `json:"pending_count"`
	LateCount      int             `json:"late_count"`
	UndefinedCount int             `json:"undefined_count"`
}

func toStatsResponse(s *lease.Stats) statsResponse {
	return statsResponse{
		TotalPaid:      s.TotalPaid,
		TotalDue:       s.TotalDue,
		Balance:        s.Balance,
		PendingCount:   s.PendingCount,
		LateCount:      s.LateCount,
		UndefinedCount: s.UndefinedCount,
	}
}

type paymentResponse struct {
	ID      uuid.UUID       `json:"id"`
	LeaseID uuid.UUID       `json:"lease_id"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date"`
	Status  payment.Status  `json:"status"`
	Type    payment.Type    `json:"type"`
	Notes   string          `json:"notes,omitempty"`
}

func toPaymentResponseList(ps []*payment.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(ps))
	for i, p := range ps {
		resp[i] = paymentResponse{
			ID:      p.ID,
			LeaseID: p.LeaseID,
			Amount:  p.Amount,
			DueDate: p.DueDate,
			Status:  p.Status,
			Type:    p.Type,
			Notes:   p.Notes,
		}
	}

	return resp
}
