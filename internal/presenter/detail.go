package presenter

import (
	"context"

	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/cart"
	"github.com/larekshop/storefront/internal/domain"
	"github.com/larekshop/storefront/internal/events"
	"github.com/larekshop/storefront/internal/render"
)

// Detail shows a single product in the modal with a toggle action that adds
// or removes it from the cart. For the lifetime of an open detail view the
// presenter stays subscribed to cart updates and re-renders the toggle
// label, so the label never goes stale while the cart changes through
// another path.
type Detail struct {
	ctx     context.Context
	api     CatalogAPI
	store   *cart.Store
	bus     *events.Bus
	modal   *render.Modal
	surface render.Surface
	logger  *zap.Logger
	cdnURL  string

	current *domain.Product
}

// NewDetail creates the detail presenter and subscribes it to the bus.
func NewDetail(ctx context.Context, api CatalogAPI, store *cart.Store, bus *events.Bus, modal *render.Modal, surface render.Surface, cdnURL string, logger *zap.Logger) *Detail {
	p := &Detail{
		ctx:     ctx,
		api:     api,
		store:   store,
		bus:     bus,
		modal:   modal,
		surface: surface,
		logger:  logger,
		cdnURL:  cdnURL,
	}

	bus.Subscribe(events.ProductView, func(payload any) {
		data, ok := payload.(events.ProductViewPayload)
		if !ok {
			return
		}
		p.show(data.ID)
	})

	bus.Subscribe(events.CartUpdate, func(payload any) {
		if p.current == nil {
			return
		}
		if _, showing := p.modal.Current().(render.ProductDetail); !showing {
			return
		}
		p.renderCurrent()
	})

	bus.Subscribe(events.ModalClose, func(any) {
		p.current = nil
	})

	return p
}

// Toggle flips cart membership for the product on display.
func (p *Detail) Toggle() {
	if p.current == nil {
		return
	}
	if p.store.Contains(p.current.ID) {
		p.store.Remove(p.current.ID)
	} else {
		p.store.Add(*p.current)
	}
}

func (p *Detail) show(id string) {
	product, err := p.api.FetchProduct(p.ctx, id)
	if err != nil {
		p.logger.Error("Failed to load product", zap.String("product_id", id), zap.Error(err))
		p.surface.Notify("could not load product")
		return
	}
	p.current = product
	p.renderCurrent()
}

func (p *Detail) renderCurrent() {
	product := *p.current
	inCart := p.store.Contains(product.ID)
	label := "add to cart"
	if inCart {
		label = "remove from cart"
	}
	p.modal.Show(render.ProductDetail{
		CatalogCard:   render.NewCatalogCard(product, p.cdnURL),
		Description:   product.Description,
		InCart:        inCart,
		ActionLabel:   label,
		ActionEnabled: true,
	})
}
