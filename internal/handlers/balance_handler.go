package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ecoaction/ecopoints-backend/internal/ledger"
)

// BalanceHandler handles point-balance HTTP requests
type BalanceHandler struct {
	ledger *ledger.Ledger
	logger *slog.Logger
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(l *ledger.Ledger, logger *slog.Logger) *BalanceHandler {
	return &BalanceHandler{
		ledger: l,
		logger: logger,
	}
}

// GetBalance handles GET /api/balance
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledger.Balance(r.Context())
	if err != nil {
		h.logger.Error("failed to read balance", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"balance": balance})
}
