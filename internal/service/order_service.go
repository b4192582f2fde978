package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/weblarek/storefront/internal/models"
)

var (
	ErrEmptyOrder     = errors.New("order must contain at least one item")
	ErrInvalidProduct = errors.New("invalid product")
	ErrInvalidTotal   = errors.New("order total does not match item prices")
	ErrInvalidPayment = errors.New("unsupported payment method")
	ErrMissingContact = errors.New("address, email and phone are required")
)

// ProductRepository interface for product data access.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// OrderService validates and accepts storefront orders.
type OrderService struct {
	productRepo ProductRepository
}

// NewOrderService creates a new order service.
func NewOrderService(productRepo ProductRepository) *OrderService {
	return &OrderService{
		productRepo: productRepo,
	}
}

// CreateOrder checks the submitted order against the catalog and mints an
// order id. The declared total must equal the sum of the referenced
// products' prices; priceless products contribute zero.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	if req.Payment != string(models.PaymentOnline) && req.Payment != string(models.PaymentCash) {
		return nil, ErrInvalidPayment
	}

	if req.Address == "" || req.Email == "" || req.Phone == "" {
		return nil, ErrMissingContact
	}

	var total float64
	for _, id := range req.Items {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, ErrInvalidProduct
		}
		if product.Price != nil {
			total += *product.Price
		}
	}

	if req.Total != total {
		return nil, ErrInvalidTotal
	}

	return &models.OrderResponse{
		ID:    uuid.New().String(),
		Total: total,
	}, nil
}
