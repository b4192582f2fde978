package events

import "github.com/weblarek/storefront/internal/models"

// Payload types, one per event direction. User-originated edits and
// model-originated change notifications are distinct types, so a handler can
// never mistake one for the other.

// ProductSelected identifies the product a card:select event refers to.
type ProductSelected struct {
	ID string
}

// ProductAction carries the product of a card:add-to-basket or
// card:toggle-basket event.
type ProductAction struct {
	Product models.Product
}

// ItemRemoved identifies the basket row a basket:remove event drops.
type ItemRemoved struct {
	ID string
}

// ProductsLoaded is the catalog:loaded payload.
type ProductsLoaded struct {
	Products []models.Product
}

// BasketSnapshot is the basket:changed payload: a computed summary, never
// the basket's internal state.
type BasketSnapshot struct {
	Items []models.BasketItem
	Count int
	Total float64
}

// OrderPatch is a user-originated field edit (order:update). Empty fields
// leave the draft untouched.
type OrderPatch struct {
	Payment models.PaymentMethod
	Address string
	Email   string
	Phone   string
}

// ContactsPatch is the contacts:update and contacts:submit payload. The
// contacts form emits the full pair on every input.
type ContactsPatch struct {
	Email string
	Phone string
}

// OrderState is the order:changed payload: the current draft plus the
// validation result of the scope that just ran.
type OrderState struct {
	Payment models.PaymentMethod
	Address string
	Email   string
	Phone   string
	Valid   bool
	Errors  map[string]string
}

// OrderConfirmed is the order:success payload.
type OrderConfirmed struct {
	OrderID string
	Total   float64
}

// ErrorMessage is the payload of every *:error event. Views only ever see
// the message string.
type ErrorMessage struct {
	Message string
}
