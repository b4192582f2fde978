package state

import (
	"context"
	"log/slog"

	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/models"
)

// AppState wires cross-model reactions. Models never call each other
// directly; every coupling between catalog, basket, order and the remote
// API is mediated by the bus through the handlers bound here, keeping the
// type-level dependency graph acyclic.
type AppState struct {
	bus     *events.Bus
	api     ShopAPI
	catalog *CatalogModel
	basket  *BasketModel
	order   *OrderModel
	log     *slog.Logger
}

func NewAppState(bus *events.Bus, api ShopAPI, catalog *CatalogModel, basket *BasketModel, order *OrderModel, log *slog.Logger) *AppState {
	s := &AppState{
		bus:     bus,
		api:     api,
		catalog: catalog,
		basket:  basket,
		order:   order,
		log:     log,
	}
	s.bindEvents()
	return s
}

// Init loads the catalog and only then announces the application as ready.
// Views must not render the catalog before app:ready fires.
func (s *AppState) Init(ctx context.Context) {
	s.catalog.Load(ctx)
	s.bus.Emit(events.AppReady, nil)
}

func (s *AppState) bindEvents() {
	s.bus.On(events.CardSelect, func(data any) {
		if p, ok := data.(events.ProductSelected); ok {
			s.catalog.SelectProduct(p.ID)
		}
	})

	// Unknown product ids are silently ignored: the catalog is the only
	// source of truth for what can enter the basket.
	s.bus.On(events.CardAddToBasket, func(data any) {
		if a, ok := data.(events.ProductAction); ok {
			if p, ok := s.catalog.GetProductByID(a.Product.ID); ok {
				s.basket.Add(p)
			}
		}
	})

	s.bus.On(events.CardToggleBasket, func(data any) {
		if a, ok := data.(events.ProductAction); ok {
			if p, ok := s.catalog.GetProductByID(a.Product.ID); ok {
				s.basket.Toggle(p)
			}
		}
	})

	s.bus.On(events.BasketRemove, func(data any) {
		if r, ok := data.(events.ItemRemoved); ok {
			s.basket.Remove(r.ID)
		}
	})

	// Keep the order's total source fresh on every basket transition.
	s.bus.On(events.BasketChanged, func(any) {
		s.order.AttachBasket(s.basket.Items())
	})

	s.bus.On(events.OrderUpdate, s.handleOrderUpdate)

	s.bus.On(events.ContactsUpdate, func(data any) {
		if c, ok := data.(events.ContactsPatch); ok {
			s.order.SetContacts(c.Email, c.Phone)
		}
	})

	s.bus.On(events.ContactsSubmit, func(data any) {
		if c, ok := data.(events.ContactsPatch); ok {
			s.submitOrder(context.Background(), c)
		}
	})

	s.bus.On(events.AppError, func(data any) {
		if e, ok := data.(events.ErrorMessage); ok {
			s.log.Error("application error", "message", e.Message)
		}
	})
}

// handleOrderUpdate routes user-originated field edits to the draft
// setters. Only events.OrderPatch payloads mutate anything. A map payload
// carrying valid/errors keys is the order model's own change notification
// and must never be routed back into the setters, or the event graph loops.
func (s *AppState) handleOrderUpdate(data any) {
	var patch events.OrderPatch
	switch p := data.(type) {
	case events.OrderPatch:
		patch = p
	case map[string]any:
		if _, ok := p["valid"]; ok {
			return
		}
		if _, ok := p["errors"]; ok {
			return
		}
		if v, ok := p["payment"].(string); ok {
			patch.Payment = models.PaymentMethod(v)
		}
		if v, ok := p["address"].(string); ok {
			patch.Address = v
		}
		if v, ok := p["email"].(string); ok {
			patch.Email = v
		}
		if v, ok := p["phone"].(string); ok {
			patch.Phone = v
		}
	default:
		return
	}

	if patch.Payment != "" {
		s.order.SetPayment(patch.Payment)
	}
	if patch.Address != "" {
		s.order.SetAddress(patch.Address)
	}
	if patch.Email != "" || patch.Phone != "" {
		email, phone := patch.Email, patch.Phone
		if email == "" {
			email = s.order.Email()
		}
		if phone == "" {
			phone = s.order.Phone()
		}
		s.order.SetContacts(email, phone)
	}
}

// submitOrder runs the order-submission workflow: contacts in, validation,
// request build, remote call. Failures recover locally into order:error;
// nothing is rethrown past the coordinator.
func (s *AppState) submitOrder(ctx context.Context, contacts events.ContactsPatch) {
	s.order.SetContacts(contacts.Email, contacts.Phone)

	if v := s.order.Validate(); !v.Valid {
		s.bus.Emit(events.OrderError, events.ErrorMessage{Message: "Order form is not filled in correctly"})
		return
	}

	req, err := s.order.ToOrderRequest()
	if err != nil {
		s.bus.Emit(events.OrderError, events.ErrorMessage{Message: err.Error()})
		return
	}

	resp, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		s.log.Error("order submission failed", "error", err)
		s.bus.Emit(events.OrderError, events.ErrorMessage{Message: err.Error()})
		return
	}

	s.basket.Clear()
	s.order.Reset()
	s.bus.Emit(events.OrderSuccess, events.OrderConfirmed{OrderID: resp.ID, Total: resp.Total})
	s.log.Info("order created", "order_id", resp.ID, "total", resp.Total)
}
