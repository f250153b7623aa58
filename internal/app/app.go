package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/cart"
	"github.com/larekshop/storefront/internal/events"
	"github.com/larekshop/storefront/internal/order"
	"github.com/larekshop/storefront/internal/presenter"
	"github.com/larekshop/storefront/internal/render"
)

// API is the full store API surface the app consumes.
type API interface {
	presenter.CatalogAPI
	order.Submitter
}

// App is the composition root: it owns the bus, the stores, the surface
// with its modal controller, and the presenters, and translates user
// commands into the same bus events the presenters react to.
type App struct {
	bus     *events.Bus
	store   *cart.Store
	draft   *order.Draft
	surface render.Surface
	modal   *render.Modal
	logger  *zap.Logger

	catalog  *presenter.Catalog
	detail   *presenter.Detail
	cartView *presenter.CartView
	checkout *presenter.Checkout

	// Raw form input, the stand-in for what the form controls hold on
	// screen. Step submits publish these values, exactly as a form submit
	// reads its inputs.
	payment string
	address string
	email   string
	phone   string
}

// New wires the whole storefront together. The surface is a required
// collaborator; a nil surface is a packaging error and panics at startup
// rather than failing later at render time.
func New(ctx context.Context, api API, surface render.Surface, cdnURL string, logger *zap.Logger) *App {
	if surface == nil {
		panic("app: render surface is required")
	}

	bus := events.NewBus()
	store := cart.NewStore(bus)
	draft := order.NewDraft(bus, logger)
	modal := render.NewModal(surface, bus)

	a := &App{
		bus:     bus,
		store:   store,
		draft:   draft,
		surface: surface,
		modal:   modal,
		logger:  logger,
	}
	a.catalog = presenter.NewCatalog(api, store, bus, surface, cdnURL, logger)
	a.detail = presenter.NewDetail(ctx, api, store, bus, modal, surface, cdnURL, logger)
	a.cartView = presenter.NewCartView(store, bus, modal, surface, logger)
	a.checkout = presenter.NewCheckout(ctx, draft, store, api, bus, modal, surface, logger)

	// A successful order resets the form inputs along with the presenters'
	// own state.
	bus.Subscribe(events.OrderSuccess, func(any) {
		a.payment = ""
		a.address = ""
		a.email = ""
		a.phone = ""
	})
	return a
}

// Bus exposes the event bus, mainly for tests driving the app.
func (a *App) Bus() *events.Bus {
	return a.bus
}

// Cart exposes the cart store.
func (a *App) Cart() *cart.Store {
	return a.store
}

// Load fetches and renders the catalog.
func (a *App) Load(ctx context.Context) {
	a.catalog.Load(ctx)
}

// Run reads commands line by line until EOF or quit.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	a.Load(ctx)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if quit := a.HandleCommand(ctx, scanner.Text()); quit {
			return nil
		}
	}
	return scanner.Err()
}

// HandleCommand translates one input line into bus events. It returns true
// when the session should end.
func (a *App) HandleCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, rest := fields[0], strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch cmd {
	case "catalog":
		a.catalog.Load(ctx)
	case "view":
		a.bus.Publish(events.ProductView, events.ProductViewPayload{ID: rest})
	case "add":
		product, ok := a.catalog.Product(rest)
		if !ok {
			a.surface.Notify(fmt.Sprintf("unknown product: %s", rest))
			return false
		}
		a.bus.Publish(events.ProductAddToCart, events.AddToCartPayload{ID: product.ID, Product: product})
	case "remove":
		a.bus.Publish(events.ProductRemoveFromCart, events.RemoveFromCartPayload{ID: rest})
	case "toggle":
		a.detail.Toggle()
	case "cart":
		a.bus.Publish(events.CartOpen, nil)
	case "checkout":
		a.bus.Publish(events.OrderStart, nil)
	case "pay":
		a.payment = rest
		a.bus.Publish(events.OrderPaymentChange, events.FieldChangePayload{Value: rest})
	case "address":
		a.address = rest
		a.bus.Publish(events.OrderAddressChange, events.FieldChangePayload{Value: rest})
	case "next":
		a.bus.Publish(events.OrderStep1Submit, events.Step1SubmitPayload{
			Payment: a.payment,
			Address: a.address,
		})
	case "email":
		a.email = rest
		a.bus.Publish(events.ContactsEmailChange, events.FieldChangePayload{Value: rest})
	case "phone":
		a.phone = rest
		a.bus.Publish(events.ContactsPhoneChange, events.FieldChangePayload{Value: rest})
	case "submit":
		a.bus.Publish(events.OrderStep2Submit, events.Step2SubmitPayload{
			Email: a.email,
			Phone: a.phone,
		})
	case "close":
		a.modal.Close()
	case "help":
		a.surface.Notify("commands: catalog, view <id>, add <id>, remove <id>, toggle, cart, checkout, pay <card|cash>, address <text>, next, email <text>, phone <text>, submit, close, quit")
	case "quit", "exit":
		return true
	default:
		a.surface.Notify(fmt.Sprintf("unknown command: %s", cmd))
	}
	return false
}
