package controller

import (
	"fmt"
	"net/http"
	"sort"

	domainErrors "github.com/cassiomorais/paygrid/internal/domain/errors"
	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/cassiomorais/paygrid/internal/service"
)

// PaymentController handles payment-related HTTP requests. It holds one
// PaymentService per registered gateway, each permanently bound to its own
// gateway's components.
type PaymentController struct {
	services map[string]*service.PaymentService
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(services map[string]*service.PaymentService) *PaymentController {
	return &PaymentController{services: services}
}

// ProcessPayment handles POST /api/v1/payments
func (h *PaymentController) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req ProcessPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	svc, ok := h.services[req.Gateway]
	if !ok {
		writeError(w, fmt.Errorf("gateway %q: %w", req.Gateway, domainErrors.ErrUnknownGateway))
		return
	}

	amount, err := payment.NewAmount(floatToCents(req.Amount), req.Currency)
	if err != nil {
		writeError(w, err)
		return
	}

	receipt, err := svc.ProcessPayment(r.Context(), amount, req.CardNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusCreated
	if !receipt.Completed() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, FromReceipt(receipt))
}

// ListGateways handles GET /api/v1/gateways
func (h *PaymentController) ListGateways(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	sort.Strings(names)

	writeJSON(w, http.StatusOK, GatewaysResponse{Gateways: names})
}
