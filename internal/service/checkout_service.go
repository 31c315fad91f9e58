package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ecoaction/ecopoints-backend/internal/cart"
	"github.com/ecoaction/ecopoints-backend/internal/ledger"
	"github.com/ecoaction/ecopoints-backend/internal/models"
	"github.com/ecoaction/ecopoints-backend/internal/orders"
)

var (
	ErrEmptyCart           = errors.New("cart must contain at least one item")
	ErrMissingCustomerInfo = errors.New("all customer fields are required")
)

// AffordabilityError reports a checkout whose total exceeds the balance.
type AffordabilityError struct {
	Required  int
	Available int
}

func (e *AffordabilityError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

// CheckoutService turns the cart into an order: it validates the customer
// info, checks affordability against the ledger, debits the total and
// records the order in the history.
type CheckoutService struct {
	cart    *cart.Cart
	ledger  *ledger.Ledger
	history *orders.History
	mu      sync.Mutex
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(c *cart.Cart, l *ledger.Ledger, h *orders.History) *CheckoutService {
	return &CheckoutService{
		cart:    c,
		ledger:  l,
		history: h,
	}
}

// Checkout commits the current cart as an order. The outcome is
// all-or-nothing: either an order is created together with a debit for
// exactly its total and one new history entry, or nothing is mutated.
// The mutex keeps the check-then-debit-then-record sequence from
// interleaving with another checkout.
func (s *CheckoutService) Checkout(ctx context.Context, info models.CustomerInfo) (*models.Order, error) {
	if info.Name == "" || info.Phone == "" || info.Email == "" || info.DeliveryDate == "" {
		return nil, ErrMissingCustomerInfo
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// Total is computed from the snapshot so the recorded items and the
	// debited amount cannot drift apart.
	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}

	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if balance < total {
		return nil, &AffordabilityError{Required: total, Available: balance}
	}

	// An unreadable history must refuse the checkout before the debit:
	// otherwise points would be spent with no order recorded.
	if _, err := s.history.List(ctx); err != nil {
		return nil, err
	}

	if _, err := s.ledger.Debit(ctx, total); err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()
	order := models.Order{
		ID:           fmt.Sprintf("ORDER-%d", createdAt.UnixMilli()),
		Items:        items,
		TotalPrice:   total,
		CustomerInfo: info,
		Status:       models.StatusProcessing,
		OrderDate:    createdAt,
	}

	if err := s.history.Append(ctx, order); err != nil {
		return nil, err
	}

	s.cart.Clear()

	return &order, nil
}
