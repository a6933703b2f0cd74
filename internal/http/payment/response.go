package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stauntonj/rently/internal/payment"
)

type paymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	LeaseID         uuid.UUID       `json:"lease_id"`
	Amount          decimal.Decimal `json:"amount"`
	DueDate         time.Time       `json:"due_date"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	Method          payment.Method  `json:"method,omitempty"`
	Status          payment.Status  `json:"status"`
	Type            payment.Type    `json:"type"`
	SystemGenerated bool            `json:"system_generated"`
	Notes           string          `json:"notes,omitempty"`
	ProcessedBy     string          `json:"processed_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:              p.ID,
		LeaseID:         p.LeaseID,
		Amount:          p.Amount,
		DueDate:         p.DueDate,
		PaymentDate:     p.PaymentDate,
		Method:          p.Method,
		Status:          p.Status,
		Type:            p.Type,
		SystemGenerated: p.SystemGenerated,
		Notes:           p.Notes,
		ProcessedBy:     p.ProcessedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toResponseList(ps []*payment.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}
