package models

// Product is a single catalog entry. Price is nil for items that are not for
// sale; they may still sit in the basket but contribute nothing to totals.
type Product struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Image    string   `json:"image,omitempty"`
	Price    *float64 `json:"price"`
}

// ProductList is the shop API listing response.
type ProductList struct {
	Total int       `json:"total"`
	Items []Product `json:"items"`
}

// Price returns a pointer to v, for literal product definitions.
func Price(v float64) *float64 {
	return &v
}

// ProductViewModel is a display-ready projection of a Product: formatted
// strings and resolved URLs, ready for a card or preview renderer.
type ProductViewModel struct {
	ID            string
	Title         string
	CategoryLabel string
	CategoryClass string
	ImageURL      string
	PriceLabel    string
	Buyable       bool
}

// BasketItemViewModel is a display-ready basket row.
type BasketItemViewModel struct {
	ID         string
	Title      string
	PriceLabel string
	Index      int
}
