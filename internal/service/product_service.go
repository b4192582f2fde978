package service

import (
	"context"

	"github.com/weblarek/storefront/internal/models"
	"github.com/weblarek/storefront/internal/repository"
)

// ProductService handles business logic for products.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the catalog listing in the shop API shape.
func (s *ProductService) ListProducts(ctx context.Context) (models.ProductList, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return models.ProductList{}, err
	}
	return models.ProductList{Total: len(products), Items: products}, nil
}

// GetProduct returns a product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
