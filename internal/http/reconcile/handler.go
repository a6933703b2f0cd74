package reconcile

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stauntonj/rently/internal/importer"
	"github.com/stauntonj/rently/internal/reconcile"
)

type Handler struct {
	importSvc    *importer.Service
	reconcileSvc *reconcile.Service
}

func NewHandler(importSvc *importer.Service, reconcileSvc *reconcile.Service) *Handler {
	return &Handler{
		importSvc:    importSvc,
		reconcileSvc: reconcileSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.reconcile)
}

type entryDTO struct {
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

type matchDTO struct {
	Entry     entryDTO        `json:"entry"`
	PaymentID uuid.UUID       `json:"payment_id"`
	LeaseID   uuid.UUID       `json:"lease_id"`
	DueDate   time.Time       `json:"due_date"`
	Amount    decimal.Decimal `json:"amount"`
}

type reconcileResponse struct {
	Matched   int        `json:"matched"`
	Settled   int        `json:"settled"`
	Matches   []matchDTO `json:"matches"`
	Unmatched []entryDTO `json:"unmatched"`
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	entries, err := h.importSvc.Import(importer.FormatStatement, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := reconcile.Params{
		Entries: entries,
		DryRun:  r.FormValue("dry_run") == "true",
	}

	if s := r.FormValue("window_days"); s != "" {
		days, err := strconv.Atoi(s)
		if err != nil || days <= 0 {
			http.Error(w, "window_days must be a positive integer", http.StatusBadRequest)
			return
		}

		params.Window = time.Duration(days) * 24 * time.Hour
	}

	result, err := h.reconcileSvc.Reconcile(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(result *reconcile.Result) reconcileResponse {
	resp := reconcileResponse{
		Matched:   len(result.Matches),
		Settled:   result.Settled,
		Matches:   make([]matchDTO, 0, len(result.Matches)),
		Unmatched: make([]entryDTO, 0, len(result.Unmatched)),
	}

	for _, m := range result.Matches {
		resp.Matches = append(resp.Matches, matchDTO{
			Entry:     toEntryDTO(m.Entry),
			PaymentID: m.Payment.ID,
			LeaseID:   m.Payment.LeaseID,
			DueDate:   m.Payment.DueDate,
			Amount:    m.Payment.Amount,
		})
	}

	for _, e := range result.Unmatched {
		resp.Unmatched = append(resp.Unmatched, toEntryDTO(e))
	}

	return resp
}

func toEntryDTO(e reconcile.Entry) entryDTO {
	return entryDTO{
		Date:      e.Date,
		Amount:    e.Amount,
		Reference: e.Reference,
	}
}
