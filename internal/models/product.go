package models

// Category classifies a shop product.
type Category string

const (
	CategoryDrink Category = "drink"
	CategoryBag   Category = "bag"
)

// Product represents a shop item purchasable with eco points.
// The catalog is static and defined at process start.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
}
