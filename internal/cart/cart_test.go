package cart

import (
	"testing"

	"github.com/ecoaction/ecopoints-backend/internal/models"
)

var (
	pepsi  = models.Product{ID: 1, Name: "Pepsi", Price: 150, Category: models.CategoryDrink}
	shoper = models.Product{ID: 3, Name: "Ekologik Shoper", Price: 500, Category: models.CategoryBag}
)

func TestCart_AddIncrementsQuantity(t *testing.T) {
	c := New()

	c.Add(pepsi)
	c.Add(pepsi)
	c.Add(pepsi)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("items count = %d, want 1 (re-adding must not duplicate)", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", items[0].Quantity)
	}
}

func TestCart_Totals(t *testing.T) {
	tests := []struct {
		name        string
		build       func(c *Cart)
		wantPrice   int
		wantItems   int
		wantEntries int
	}{
		{
			name:      "empty cart",
			build:     func(c *Cart) {},
			wantPrice: 0,
			wantItems: 0,
		},
		{
			name: "single item",
			build: func(c *Cart) {
				c.Add(pepsi)
			},
			wantPrice:   150,
			wantItems:   1,
			wantEntries: 1,
		},
		{
			name: "mixed quantities",
			build: func(c *Cart) {
				c.Add(pepsi)
				c.Add(pepsi)
				c.Add(shoper)
			},
			wantPrice:   800,
			wantItems:   3,
			wantEntries: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.build(c)

			if got := c.TotalPrice(); got != tt.wantPrice {
				t.Errorf("TotalPrice() = %d, want %d", got, tt.wantPrice)
			}
			if got := c.TotalItems(); got != tt.wantItems {
				t.Errorf("TotalItems() = %d, want %d", got, tt.wantItems)
			}
			if got := len(c.Items()); got != tt.wantEntries {
				t.Errorf("entry count = %d, want %d", got, tt.wantEntries)
			}
		})
	}
}

func TestCart_Remove(t *testing.T) {
	t.Run("quantity above one decrements", func(t *testing.T) {
		c := New()
		c.Add(pepsi)
		c.Add(pepsi)
		c.Add(pepsi)

		c.Remove(pepsi.ID)

		items := c.Items()
		if len(items) != 1 {
			t.Fatalf("items count = %d, want 1", len(items))
		}
		if items[0].Quantity != 2 {
			t.Errorf("quantity = %d, want 2", items[0].Quantity)
		}
	})

	t.Run("quantity one removes the entry", func(t *testing.T) {
		c := New()
		c.Add(pepsi)

		c.Remove(pepsi.ID)

		if got := len(c.Items()); got != 0 {
			t.Errorf("items count = %d, want 0", got)
		}
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		c := New()
		c.Add(pepsi)

		c.Remove(999)

		if got := len(c.Items()); got != 1 {
			t.Errorf("items count = %d, want 1", got)
		}
	})
}

func TestCart_ItemsReturnsDetachedCopy(t *testing.T) {
	c := New()
	c.Add(pepsi)

	items := c.Items()
	items[0].Quantity = 99

	if got := c.Items()[0].Quantity; got != 1 {
		t.Errorf("cart quantity = %d, want 1 (Items must return a copy)", got)
	}
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(pepsi)
	c.Add(shoper)

	c.Clear()

	if got := len(c.Items()); got != 0 {
		t.Errorf("items count after Clear = %d, want 0", got)
	}
	if got := c.TotalPrice(); got != 0 {
		t.Errorf("TotalPrice after Clear = %d, want 0", got)
	}
}
