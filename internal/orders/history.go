package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ecoaction/ecopoints-backend/internal/models"
	"github.com/ecoaction/ecopoints-backend/internal/storage"
)

// HistoryKey is the storage key the order history is persisted under.
const HistoryKey = "ecoShopOrderHistory"

// History is the append-only list of completed orders, persisted as a
// JSON array. No operation mutates or deletes a recorded order.
type History struct {
	store storage.Store
	mu    sync.Mutex
}

// NewHistory creates an order history over the given store.
func NewHistory(store storage.Store) *History {
	return &History{store: store}
}

// List returns all recorded orders, oldest first. A missing key reads as
// an empty history.
func (h *History) List(ctx context.Context) ([]models.Order, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.load(ctx)
}

// Append records order at the end of the history.
func (h *History) Append(ctx context.Context, order models.Order) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	history, err := h.load(ctx)
	if err != nil {
		return err
	}

	history = append(history, order)

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode order history: %w", err)
	}
	if err := h.store.Set(ctx, HistoryKey, string(data)); err != nil {
		return fmt.Errorf("write order history: %w", err)
	}

	return nil
}

func (h *History) load(ctx context.Context) ([]models.Order, error) {
	raw, err := h.store.Get(ctx, HistoryKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read order history: %w", err)
	}

	var history []models.Order
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		// Unlike the balance, a corrupt history is surfaced: silently
		// starting over would drop recorded orders.
		return nil, fmt.Errorf("decode order history: %w", err)
	}

	return history, nil
}
