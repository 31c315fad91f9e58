package service

import (
	"context"

	"github.com/ecoaction/ecopoints-backend/internal/models"
	"github.com/ecoaction/ecopoints-backend/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
