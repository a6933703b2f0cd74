package lease

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stauntonj/rently/internal/lease"
	"github.com/stauntonj/rently/internal/payment"
	"github.com/stauntonj/rently/internal/schedule"
)

type Handler struct {
	leases   *lease.Service
	payments *payment.Service
}

func NewHandler(leases *lease.Service, payments *payment.Service) *Handler {
	return &Handler{leases: leases, payments: payments}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/status", h.updateStatus)
	r.Get("/{id}/stats", h.stats)
	r.Post("/{id}/payments/materialize", h.materialize)
}

type createLeaseRequest struct {
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
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	freq := req.Frequency
	if freq == "" {
		freq = schedule.FrequencyMonthly
	}

	l, err := h.leases.Create(r.Context(), lease.CreateParams{
		PropertyID:       req.PropertyID,
		TenantID:         req.TenantID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		PaymentStartDate: req.PaymentStartDate,
		MonthlyRent:      req.MonthlyRent,
		SecurityDeposit:  req.SecurityDeposit,
		AgencyFee:        req.AgencyFee,
		Frequency:        freq,
		PaymentDay:       req.PaymentDay,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidFrequency) || errors.Is(err, schedule.ErrInvalidDateRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := lease.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := lease.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("active"); s != "" {
		active := s == "true"
		filter.Active = &active
	}

	ls, err := h.leases.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(ls)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	l, err := h.leases.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, lease.ErrNotFound) {
			http.Error(w, "lease not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status lease.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.leases.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, lease.ErrNotFound) {
			http.Error(w, "lease not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	stats, err := h.leases.Stats(r.Context(), id)
	if err != nil {
		if errors.Is(err, lease.ErrNotFound) {
			http.Error(w, "lease not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStatsResponse(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type materializeRequest struct {
	AsOf *time.Time `json:"as_of,omitempty"`
}

type materializeResponse struct {
	CreatedCount int               `json:"created_count"`
	Created      []paymentResponse `json:"created"`
}

// materialize backfills the rent payments the lease should have accumulated
// up to the cutoff. It reads the schedule inputs from the stored lease, never
// from the request.
func (h *Handler) materialize(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req materializeRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	l, err := h.leases.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, lease.ErrNotFound) {
			http.Error(w, "lease not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	params := payment.MaterializeParams{
		LeaseID:    l.ID,
		RentAmount: l.MonthlyRent,
		StartDate:  l.ScheduleStart(),
		Frequency:  l.Frequency,
	}
	if req.AsOf != nil {
		params.AsOf = *req.AsOf
	}

	result, err := h.payments.Materialize(r.Context(), params)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidFrequency) || errors.Is(err, schedule.ErrInvalidDateRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(materializeResponse{
		CreatedCount: result.CreatedCount,
		Created:      toPaymentResponseList(result.Created),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
