package state

import (
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/models"
)

type basketData struct {
	items []models.BasketItem
}

// BasketModel owns the cart contents under a unique-item policy: every
// product appears at most once and Add of a product already present is a
// no-op. Insertion order is display order. Calls that change state emit
// basket:changed with a computed snapshot; true no-ops stay silent.
type BasketModel struct {
	model[basketData]
}

func NewBasketModel(bus *events.Bus) *BasketModel {
	return &BasketModel{model: newModel(bus, basketData{})}
}

func (m *BasketModel) Add(p models.Product) {
	if m.Contains(p.ID) {
		return
	}
	m.setData(basketData{items: append(m.copyItems(), models.BasketItem{Product: p})})
	m.emitChanged()
}

// Remove drops the item for the given product id. Removing an absent id is
// a no-op, not an error.
func (m *BasketModel) Remove(id string) {
	if !m.Contains(id) {
		return
	}
	items := make([]models.BasketItem, 0, len(m.data.items)-1)
	for _, it := range m.data.items {
		if it.Product.ID != id {
			items = append(items, it)
		}
	}
	m.setData(basketData{items: items})
	m.emitChanged()
}

// Toggle backs the "in basket" button affordance: present removes, absent
// adds.
func (m *BasketModel) Toggle(p models.Product) {
	if m.Contains(p.ID) {
		m.Remove(p.ID)
	} else {
		m.Add(p)
	}
}

// Clear empties the basket, used after a successful order submission.
func (m *BasketModel) Clear() {
	if len(m.data.items) == 0 {
		return
	}
	m.setData(basketData{})
	m.emitChanged()
}

func (m *BasketModel) Contains(id string) bool {
	for _, it := range m.data.items {
		if it.Product.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the basket rows in insertion order.
func (m *BasketModel) Items() []models.BasketItem {
	return m.copyItems()
}

// Count is the number of distinct items in the basket.
func (m *BasketModel) Count() int {
	return len(m.data.items)
}

// Total sums the prices of items that have one; priceless items are listed
// but contribute zero. The order request total is computed from the same
// fold and must always agree with this.
func (m *BasketModel) Total() float64 {
	var sum float64
	for _, it := range m.data.items {
		if it.Product.Price != nil {
			sum += *it.Product.Price
		}
	}
	return sum
}

func (m *BasketModel) TotalLabel() string {
	t := m.Total()
	return FormatPrice(&t)
}

// ViewModels builds the numbered display rows for the basket screen.
func (m *BasketModel) ViewModels() []models.BasketItemViewModel {
	out := make([]models.BasketItemViewModel, len(m.data.items))
	for i, it := range m.data.items {
		out[i] = models.BasketItemViewModel{
			ID:         it.Product.ID,
			Title:      it.Product.Title,
			PriceLabel: FormatPrice(it.Product.Price),
			Index:      i + 1,
		}
	}
	return out
}

func (m *BasketModel) copyItems() []models.BasketItem {
	items := make([]models.BasketItem, len(m.data.items))
	copy(items, m.data.items)
	return items
}

func (m *BasketModel) emitChanged() {
	m.emit(events.BasketChanged, events.BasketSnapshot{
		Items: m.Items(),
		Count: m.Count(),
		Total: m.Total(),
	})
}
