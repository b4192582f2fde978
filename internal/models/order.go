package models

// PaymentMethod enumerates the supported payment options.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// BasketItem references a catalog product held in the basket. The basket is
// a unique-item set, so there is no quantity.
type BasketItem struct {
	Product Product
}

// OrderRequest is the payload sent to POST /api/order.
type OrderRequest struct {
	Items   []string `json:"items"`
	Payment string   `json:"payment"`
	Address string   `json:"address"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Total   float64  `json:"total"`
}

// OrderResponse is the backend's confirmation for a created order.
type OrderResponse struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// ValidationResult reports per-field validation of the order draft. Error
// keys are drawn from {payment, address, email, phone}.
type ValidationResult struct {
	Valid  bool
	Errors map[string]string
}
