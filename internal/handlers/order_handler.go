package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecoaction/ecopoints-backend/internal/models"
	"github.com/ecoaction/ecopoints-backend/internal/orders"
	"github.com/ecoaction/ecopoints-backend/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	checkout *service.CheckoutService
	history  *orders.History
	logger   *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(checkout *service.CheckoutService, history *orders.History, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		history:  history,
		logger:   logger,
	}
}

// CreateOrder handles POST /api/order
// Commits the current cart as an order:
// - 200: order created
// - 400: missing customer fields or empty cart
// - 402: total exceeds the point balance
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var info models.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		h.logger.Error("failed to decode order request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.checkout.Checkout(r.Context(), info)
	if err != nil {
		var affErr *service.AffordabilityError
		switch {
		case errors.Is(err, service.ErrMissingCustomerInfo):
			writeError(w, http.StatusBadRequest, "All customer fields are required")
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "Cart must contain at least one item")
		case errors.As(err, &affErr):
			h.logger.Info("checkout refused", "required", affErr.Required, "available", affErr.Available)
			writeJSON(w, http.StatusPaymentRequired, map[string]interface{}{
				"error":     "Insufficient balance",
				"required":  affErr.Required,
				"available": affErr.Available,
			})
		default:
			h.logger.Error("failed to create order", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, order)
	h.logger.Info("order created successfully", "order_id", order.ID, "total_price", order.TotalPrice)
}

// ListOrders handles GET /api/order
// Returns the full order history, oldest first
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	history, err := h.history.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list orders", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if history == nil {
		history = []models.Order{}
	}
	writeJSON(w, http.StatusOK, history)
}
