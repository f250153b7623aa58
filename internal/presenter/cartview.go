package presenter

import (
	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/cart"
	"github.com/larekshop/storefront/internal/domain"
	"github.com/larekshop/storefront/internal/events"
	"github.com/larekshop/storefront/internal/render"
)

// CartView renders the cart contents as removable rows with a running
// total. The checkout action is disabled while the cart is empty. Every
// render reads a fresh snapshot from the store; nothing is cached across
// renders.
type CartView struct {
	store   *cart.Store
	bus     *events.Bus
	modal   *render.Modal
	surface render.Surface
	logger  *zap.Logger
}

// NewCartView creates the cart presenter and subscribes it to the bus.
func NewCartView(store *cart.Store, bus *events.Bus, modal *render.Modal, surface render.Surface, logger *zap.Logger) *CartView {
	p := &CartView{
		store:   store,
		bus:     bus,
		modal:   modal,
		surface: surface,
		logger:  logger,
	}

	bus.Subscribe(events.CartOpen, func(any) {
		p.show()
	})

	bus.Subscribe(events.CartUpdate, func(payload any) {
		if _, showing := p.modal.Current().(render.CartPanel); showing {
			p.show()
		}
	})

	bus.Subscribe(events.ProductRemoveFromCart, func(payload any) {
		data, ok := payload.(events.RemoveFromCartPayload)
		if !ok {
			return
		}
		p.store.Remove(data.ID)
	})

	return p
}

func (p *CartView) show() {
	p.modal.Show(p.buildPanel(p.store.Snapshot()))
}

func (p *CartView) buildPanel(state domain.CartState) render.CartPanel {
	rows := make([]render.CartRow, 0, len(state.Items))
	for i, item := range state.Items {
		rows = append(rows, render.CartRow{
			Index:      i + 1,
			ID:         item.Product.ID,
			Title:      item.Product.Title,
			PriceLabel: render.FormatPrice(item.Product.Price),
			Count:      item.Count,
		})
	}
	return render.CartPanel{
		Rows:       rows,
		TotalLabel: render.FormatTotal(state.Total),
		CanProceed: len(state.Items) > 0,
	}
}
