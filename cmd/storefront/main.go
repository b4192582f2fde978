package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/weblarek/storefront/internal/config"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/models"
	"github.com/weblarek/storefront/internal/shopapi"
	"github.com/weblarek/storefront/internal/state"
	"github.com/weblarek/storefront/pkg/logger"
)

// Headless storefront. Lists the catalog and optionally runs a scripted
// checkout against the shop backend, emitting the same events a view layer
// would.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	var (
		buy     = flag.String("buy", "", "comma-separated product ids to add to the basket")
		payment = flag.String("payment", "card", "payment method: card or cash")
		address = flag.String("address", "", "delivery address")
		email   = flag.String("email", "", "contact email")
		phone   = flag.String("phone", "", "contact phone, +7 (999) 999-99-99")
	)
	flag.Parse()

	bus := events.New()
	api := shopapi.New(cfg.Shop.APIURL, cfg.Shop.APIKey, time.Duration(cfg.Shop.RequestTimeout)*time.Second)
	catalog := state.NewCatalogModel(bus, api, cfg.Shop.CDNOrigin)
	basket := state.NewBasketModel(bus)
	order := state.NewOrderModel(bus)
	app := state.NewAppState(bus, api, catalog, basket, order, log)

	// Catch-all diagnostics: every bus emission at debug level.
	bus.OnAll(func(ev events.Event) {
		log.Debug("event", "name", ev.Name, "data", fmt.Sprintf("%+v", ev.Data))
	})

	bus.On(events.CatalogError, func(data any) {
		if e, ok := data.(events.ErrorMessage); ok {
			fmt.Fprintf(os.Stderr, "catalog load failed: %s\n", e.Message)
		}
	})
	bus.On(events.OrderSuccess, func(data any) {
		if c, ok := data.(events.OrderConfirmed); ok {
			fmt.Printf("order %s accepted, debited %s\n", c.OrderID, state.FormatPrice(&c.Total))
		}
	})
	bus.On(events.OrderError, func(data any) {
		if e, ok := data.(events.ErrorMessage); ok {
			fmt.Fprintf(os.Stderr, "order failed: %s\n", e.Message)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	app.Init(ctx)

	for _, vm := range catalog.AllProductViewModels() {
		fmt.Printf("%-8s %-34s %-12s %s\n", vm.ID, vm.Title, vm.CategoryLabel, vm.PriceLabel)
	}

	if *buy == "" {
		return
	}

	for _, id := range strings.Split(*buy, ",") {
		id = strings.TrimSpace(id)
		if p, ok := catalog.GetProductByID(id); ok {
			bus.Emit(events.CardAddToBasket, events.ProductAction{Product: p})
		} else {
			log.Warn("unknown product id", "id", id)
		}
	}
	fmt.Printf("basket: %d items, %s\n", basket.Count(), basket.TotalLabel())

	bus.Emit(events.OrderUpdate, events.OrderPatch{
		Payment: models.PaymentMethod(*payment),
		Address: *address,
	})
	bus.Emit(events.ContactsSubmit, events.ContactsPatch{
		Email: *email,
		Phone: *phone,
	})
}
