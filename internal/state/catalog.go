package state

import (
	"context"
	"strconv"

	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/models"
)

// ShopAPI is the remote collaborator the state layer talks to.
type ShopAPI interface {
	GetProducts(ctx context.Context) (models.ProductList, error)
	GetProductByID(ctx context.Context, id string) (models.Product, error)
	CreateOrder(ctx context.Context, req models.OrderRequest) (models.OrderResponse, error)
}

const placeholderImage = "/images/placeholder.svg"

type catalogData struct {
	products   []models.Product
	loading    bool
	selectedID string
}

// CatalogModel owns the product list, the loading flag and the current
// selection, and derives display-ready view models from them. The product
// sequence keeps the server order and is replaced wholesale on each load.
type CatalogModel struct {
	model[catalogData]
	api       ShopAPI
	cdnOrigin string
}

func NewCatalogModel(bus *events.Bus, api ShopAPI, cdnOrigin string) *CatalogModel {
	return &CatalogModel{
		model:     newModel(bus, catalogData{}),
		api:       api,
		cdnOrigin: cdnOrigin,
	}
}

// Load fetches the product list. Fetch failures never escape this boundary:
// they are converted to a catalog:error event.
func (m *CatalogModel) Load(ctx context.Context) {
	d := m.data
	d.loading = true
	m.setData(d)
	m.emit(events.CatalogLoad, nil)

	list, err := m.api.GetProducts(ctx)
	if err != nil {
		d = m.data
		d.loading = false
		m.setData(d)
		m.emit(events.CatalogError, events.ErrorMessage{Message: err.Error()})
		return
	}

	m.setData(catalogData{products: list.Items, selectedID: m.data.selectedID})
	m.emit(events.CatalogLoaded, events.ProductsLoaded{Products: list.Items})
}

// SelectProduct records id as the current selection. Selecting an unknown id
// is legal and simply yields no selected product.
func (m *CatalogModel) SelectProduct(id string) {
	d := m.data
	d.selectedID = id
	m.setData(d)
}

func (m *CatalogModel) SelectedProduct() (models.Product, bool) {
	return m.findByID(m.data.selectedID)
}

func (m *CatalogModel) GetProducts() []models.Product {
	out := make([]models.Product, len(m.data.products))
	copy(out, m.data.products)
	return out
}

func (m *CatalogModel) GetProductByID(id string) (models.Product, bool) {
	return m.findByID(id)
}

func (m *CatalogModel) IsLoading() bool {
	return m.data.loading
}

func (m *CatalogModel) findByID(id string) (models.Product, bool) {
	if id == "" {
		return models.Product{}, false
	}
	for _, p := range m.data.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ToProductViewModel builds the display projection for one product. All
// product formatting lives here; several view types consume the same product
// and must not each grow their own copy of these rules.
func (m *CatalogModel) ToProductViewModel(p models.Product) models.ProductViewModel {
	label := p.Category
	if label == "" {
		label = "other"
	}
	return models.ProductViewModel{
		ID:            p.ID,
		Title:         p.Title,
		CategoryLabel: label,
		CategoryClass: categoryClass(p.Category),
		ImageURL:      m.imageURL(p.Image),
		PriceLabel:    FormatPrice(p.Price),
		Buyable:       p.Price != nil,
	}
}

func (m *CatalogModel) AllProductViewModels() []models.ProductViewModel {
	out := make([]models.ProductViewModel, len(m.data.products))
	for i, p := range m.data.products {
		out[i] = m.ToProductViewModel(p)
	}
	return out
}

func (m *CatalogModel) imageURL(path string) string {
	if path == "" {
		return placeholderImage
	}
	return m.cdnOrigin + path
}

// categoryClass maps a raw category onto the closed set of display buckets.
// Unknown categories fall back to "other".
func categoryClass(category string) string {
	switch category {
	case "soft-skill":
		return "soft"
	case "other":
		return "other"
	case "button":
		return "button"
	case "additional":
		return "additional"
	default:
		return "other"
	}
}

// FormatPrice renders a price label. Absent prices are priceless, not free.
func FormatPrice(price *float64) string {
	if price == nil {
		return "Priceless"
	}
	return strconv.FormatFloat(*price, 'f', -1, 64) + " synapses"
}
