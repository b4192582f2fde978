package state

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/models"
)

func testProduct(id string, price *float64) models.Product {
	return models.Product{ID: id, Title: "Product " + id, Price: price}
}

func newTestBasket(t *testing.T) (*BasketModel, *[]events.BasketSnapshot) {
	t.Helper()
	bus := events.New()
	basket := NewBasketModel(bus)

	var snapshots []events.BasketSnapshot
	bus.On(events.BasketChanged, func(data any) {
		snap, ok := data.(events.BasketSnapshot)
		require.True(t, ok)
		snapshots = append(snapshots, snap)
	})
	return basket, &snapshots
}

func TestBasketAddIsIdempotent(t *testing.T) {
	basket, snapshots := newTestBasket(t)
	p := testProduct("p-001", models.Price(100))

	basket.Add(p)
	basket.Add(p)
	basket.Add(p)

	assert.Equal(t, 1, basket.Count())
	assert.Equal(t, 100.0, basket.Total())
	assert.Len(t, *snapshots, 1, "duplicate adds are no-ops and stay silent")
}

func TestBasketRemove(t *testing.T) {
	basket, snapshots := newTestBasket(t)
	basket.Add(testProduct("p-001", models.Price(100)))
	basket.Add(testProduct("p-002", models.Price(50)))

	basket.Remove("p-001")

	assert.Equal(t, 1, basket.Count())
	assert.Equal(t, 50.0, basket.Total())
	assert.False(t, basket.Contains("p-001"))

	// Absent id is a no-op and, consistently with Add, does not emit.
	before := len(*snapshots)
	basket.Remove("p-001")
	basket.Remove("never-added")
	assert.Equal(t, before, len(*snapshots))
	assert.Equal(t, 1, basket.Count())
}

func TestBasketToggle(t *testing.T) {
	basket, _ := newTestBasket(t)
	p := testProduct("p-001", models.Price(100))

	basket.Toggle(p)
	assert.True(t, basket.Contains("p-001"))

	basket.Toggle(p)
	assert.False(t, basket.Contains("p-001"))
	assert.Equal(t, 0, basket.Count())
}

func TestBasketClear(t *testing.T) {
	basket, snapshots := newTestBasket(t)
	basket.Add(testProduct("p-001", models.Price(100)))
	basket.Add(testProduct("p-002", nil))

	basket.Clear()

	assert.Equal(t, 0, basket.Count())
	assert.Equal(t, 0.0, basket.Total())

	last := (*snapshots)[len(*snapshots)-1]
	assert.Empty(t, last.Items)
	assert.Equal(t, 0, last.Count)
	assert.Equal(t, 0.0, last.Total)
}

func TestBasketPricelessItemsListedButFree(t *testing.T) {
	basket, _ := newTestBasket(t)
	basket.Add(testProduct("p-001", models.Price(100)))
	basket.Add(testProduct("p-002", nil))

	assert.Equal(t, 2, basket.Count())
	assert.Equal(t, 100.0, basket.Total())

	vms := basket.ViewModels()
	require.Len(t, vms, 2)
	assert.Equal(t, 1, vms[0].Index)
	assert.Equal(t, 2, vms[1].Index)
	assert.Equal(t, "100 synapses", vms[0].PriceLabel)
	assert.Equal(t, "Priceless", vms[1].PriceLabel)
}

func TestBasketInsertionOrderPreserved(t *testing.T) {
	basket, _ := newTestBasket(t)
	basket.Add(testProduct("c", models.Price(3)))
	basket.Add(testProduct("a", models.Price(1)))
	basket.Add(testProduct("b", models.Price(2)))

	items := basket.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].Product.ID)
	assert.Equal(t, "a", items[1].Product.ID)
	assert.Equal(t, "b", items[2].Product.ID)
}

// Property: after any sequence of Add/Remove/Toggle calls, Count and Total
// match a full recompute over Items, and every emitted snapshot agrees with
// the state it described. No drift between incremental updates and the fold.
func TestBasketCountAndTotalMatchFold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	pool := make([]models.Product, 8)
	for i := range pool {
		var price *float64
		if i%3 != 0 { // every third product is priceless
			price = models.Price(float64(10 * (i + 1)))
		}
		pool[i] = testProduct(fmt.Sprintf("p-%03d", i), price)
	}

	basket, snapshots := newTestBasket(t)

	for op := 0; op < 500; op++ {
		p := pool[rng.Intn(len(pool))]
		switch rng.Intn(3) {
		case 0:
			basket.Add(p)
		case 1:
			basket.Remove(p.ID)
		case 2:
			basket.Toggle(p)
		}

		items := basket.Items()
		var wantTotal float64
		seen := map[string]bool{}
		for _, it := range items {
			require.False(t, seen[it.Product.ID], "duplicate product id in basket")
			seen[it.Product.ID] = true
			if it.Product.Price != nil {
				wantTotal += *it.Product.Price
			}
		}

		require.Equal(t, len(items), basket.Count())
		require.Equal(t, wantTotal, basket.Total())
	}

	for _, snap := range *snapshots {
		require.Equal(t, len(snap.Items), snap.Count)
	}
}
