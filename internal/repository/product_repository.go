package repository

import (
	"context"
	"errors"

	"github.com/ecoaction/ecopoints-backend/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository
// seeded with the campaign's shop catalog. Prices are in eco points.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := []models.Product{
		{
			ID:          1,
			Name:        "Pepsi",
			Price:       150,
			Image:       "https://public.youware.com/users-website-assets/prod/ef7cf6b7-904e-49dd-abd1-7ec03fc635a1/7be182ad84884670aadcde84fabfeace.jpg",
			Category:    models.CategoryDrink,
			Description: "Sovuq Pepsi - eng yaxshi ichimliklardand biri",
			Rating:      4.8,
		},
		{
			ID:          2,
			Name:        "Coca Cola",
			Price:       150,
			Image:       "https://public.youware.com/users-website-assets/prod/ef7cf6b7-904e-49dd-abd1-7ec03fc635a1/fb45046529e743c7adb9565d89a289cf.jpg",
			Category:    models.CategoryDrink,
			Description: "Original Coca Cola klassik ta'mi",
			Rating:      4.9,
		},
		{
			ID:          3,
			Name:        "Ekologik Shoper",
			Price:       500,
			Image:       "https://public.youware.com/users-website-assets/prod/ef7cf6b7-904e-49dd-abd1-7ec03fc635a1/ab272108a2d549a29caa69aa3cb99344.jpg",
			Category:    models.CategoryBag,
			Description: "100% paxta shoper sumkasi - tabiatga zarar yetkazmaydi",
			Rating:      4.7,
		},
		{
			ID:          4,
			Name:        "Canvas Sumka",
			Price:       500,
			Image:       "https://public.youware.com/users-website-assets/prod/ef7cf6b7-904e-49dd-abd1-7ec03fc635a1/d7cbae97199f4294be5c0641b7160c33.jpg",
			Category:    models.CategoryBag,
			Description: "Chidamli canvas sumka - uzoq muddat xizmat qiladi",
			Rating:      4.6,
		},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	for _, product := range r.products {
		if product.ID == id {
			p := product
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}
