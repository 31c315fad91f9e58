package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/ecoaction/ecopoints-backend/internal/storage"
)

// BalanceKey is the storage key the point balance is persisted under.
const BalanceKey = "ecoPointsBalance"

var ErrInvalidAmount = errors.New("amount must be positive")

// Ledger is the single source of truth for the user's point balance,
// durable across restarts via the storage backend. The mutex serializes
// read-modify-write cycles so concurrent handlers cannot interleave
// between a read and the following write.
type Ledger struct {
	store storage.Store
	mu    sync.Mutex
}

// New creates a ledger over the given store.
func New(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Balance returns the persisted balance. A missing or unparseable stored
// value reads as zero.
func (l *Ledger) Balance(ctx context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.read(ctx)
}

// Credit adds amount to the balance and returns the new balance.
// There is no upper bound.
func (l *Ledger) Credit(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.read(ctx)
	if err != nil {
		return 0, err
	}

	balance += amount
	if err := l.write(ctx, balance); err != nil {
		return 0, err
	}

	return balance, nil
}

// Debit subtracts amount from the balance, clamping the result at zero,
// and returns the new balance. Over-debit is absorbed silently: callers
// that must not over-spend check Balance first.
func (l *Ledger) Debit(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.read(ctx)
	if err != nil {
		return 0, err
	}

	balance -= amount
	if balance < 0 {
		balance = 0
	}
	if err := l.write(ctx, balance); err != nil {
		return 0, err
	}

	return balance, nil
}

func (l *Ledger) read(ctx context.Context) (int, error) {
	raw, err := l.store.Get(ctx, BalanceKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("read balance: %w", err)
	}

	balance, err := strconv.Atoi(raw)
	if err != nil || balance < 0 {
		// Lenient parse: a corrupt stored value reads as zero.
		return 0, nil
	}

	return balance, nil
}

func (l *Ledger) write(ctx context.Context, balance int) error {
	if err := l.store.Set(ctx, BalanceKey, strconv.Itoa(balance)); err != nil {
		return fmt.Errorf("write balance: %w", err)
	}
	return nil
}
