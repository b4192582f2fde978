package repository

import (
	"context"
	"errors"

	"github.com/weblarek/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory
// storage. Listing order is insertion order, so clients see a stable
// catalog.
type InMemoryProductRepository struct {
	products []models.Product
	index    map[string]int
}

// NewInMemoryProductRepository creates a new in-memory product repository
// with seed data. One item is deliberately priceless and one carries a
// category outside the known display buckets.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := []models.Product{
		{ID: "p-001", Title: "Plus One Hour a Day", Category: "additional", Image: "/5_Dots.svg", Price: models.Price(750)},
		{ID: "p-002", Title: "HEX Aura", Category: "soft-skill", Image: "/Shell.svg", Price: models.Price(450)},
		{ID: "p-003", Title: "Framework for Gluing Components", Category: "additional", Image: "/Asterisk_2.svg", Price: models.Price(345)},
		{ID: "p-004", Title: "Infinity Backlog", Category: "other", Image: "/Soft_Flower.svg", Price: nil},
		{ID: "p-005", Title: "BEM Pill", Category: "button", Image: "/mute-cat.svg", Price: models.Price(1500)},
		{ID: "p-006", Title: "Backend Anti-Stress", Category: "other", Image: "/Polygon.svg", Price: models.Price(980)},
		{ID: "p-007", Title: "Focus Grabber", Category: "soft-skill", Image: "/Dots.svg", Price: models.Price(1450)},
		{ID: "p-008", Title: "Well-Grounded Pixel", Category: "hard-skill", Image: "/Pixel.svg", Price: models.Price(1200)},
		{ID: "p-009", Title: "Clean Code Enhancer", Category: "additional", Image: "/Butterfly.svg", Price: models.Price(1050)},
		{ID: "p-010", Title: "Microlayout Mixer", Category: "other", Image: "/Leaf.svg", Price: models.Price(785)},
	}

	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}

	return &InMemoryProductRepository{
		products: products,
		index:    index,
	}
}

// GetAll returns all products in catalog order.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}
