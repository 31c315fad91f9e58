package cart

import (
	"sync"

	"github.com/ecoaction/ecopoints-backend/internal/models"
)

// Cart accumulates a prospective purchase. The campaign site is
// single-user, so one cart serves the whole process; the mutex keeps
// concurrent handlers safe.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of product in the cart, incrementing the quantity
// when the product is already present. There is no balance check at
// add-time.
func (c *Cart) Add(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity++
			return
		}
	}

	c.items = append(c.items, models.CartItem{Product: product, Quantity: 1})
}

// Remove takes one unit of the product out of the cart, dropping the
// entry entirely at quantity one. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != productID {
			continue
		}
		if c.items[i].Quantity > 1 {
			c.items[i].Quantity--
		} else {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return
	}
}

// Items returns a detached copy of the cart contents.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice returns the sum of price times quantity over all items.
func (c *Cart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Price * item.Quantity
	}
	return total
}

// TotalItems returns the summed quantities, used for the cart badge.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}
