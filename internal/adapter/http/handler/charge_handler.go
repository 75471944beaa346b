package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/picopay/engine/internal/adapter/http/dto"
	"github.com/picopay/engine/internal/domain"
	"github.com/picopay/engine/internal/usecase"
)

// IdempotencyKeyHeader carries the client-supplied idempotency key. Requests
// without it are processed unconditionally.
const IdempotencyKeyHeader = "Idempotency-Key"

// ChargeService defines the behavior needed by ChargeHandler.
type ChargeService interface {
	ProcessCharge(ctx context.Context, input usecase.ProcessChargeInput) (*domain.ChargeResult, error)
	GetCharge(ctx context.Context, id string) (*domain.Charge, error)
	ListChargesByAccount(ctx context.Context, input usecase.ListChargesByAccountInput) ([]*domain.Charge, error)
}

// ChargeHandler handles charge-related HTTP requests.
type ChargeHandler struct {
	chargeUC ChargeService
}

// NewChargeHandler creates a new ChargeHandler.
func NewChargeHandler(chargeUC ChargeService) *ChargeHandler {
	return &ChargeHandler{chargeUC: chargeUC}
}

// Create processes a charge request.
func (h *ChargeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	key := r.Header.Get(IdempotencyKeyHeader)

	result, err := h.chargeUC.ProcessCharge(r.Context(), req.ToUseCaseInput(key))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to process charge", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ChargeResultFromDomain(result))
}

// Get retrieves a charge by ID.
func (h *ChargeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing charge ID", "")
		return
	}

	charge, err := h.chargeUC.GetCharge(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get charge", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ChargeFromDomain(charge))
}

// ListByAccount lists charges for an account.
func (h *ChargeHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", usecase.DefaultListLimit)
	offset := parseIntQuery(r, "offset", 0)

	charges, err := h.chargeUC.ListChargesByAccount(r.Context(), usecase.ListChargesByAccountInput{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list charges", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListChargesResponse{
		Charges: dto.ChargesFromDomain(charges),
		Total:   int64(len(charges)),
	})
}
