package presenter

import (
	"context"

	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/cart"
	"github.com/larekshop/storefront/internal/domain"
	"github.com/larekshop/storefront/internal/events"
	"github.com/larekshop/storefront/internal/larekapi"
	"github.com/larekshop/storefront/internal/render"
)

// CatalogAPI is the read side of the store API the presenters consume.
type CatalogAPI interface {
	FetchProducts(ctx context.Context, q larekapi.ProductQuery) ([]domain.Product, error)
	FetchProduct(ctx context.Context, id string) (*domain.Product, error)
}

// Catalog loads the product list, renders the catalog cards and keeps the
// header basket counter current. Add-to-cart intents go straight into the
// cart store without a detail-view round trip.
type Catalog struct {
	api     CatalogAPI
	store   *cart.Store
	bus     *events.Bus
	surface render.Surface
	logger  *zap.Logger
	cdnURL  string

	products map[string]domain.Product
}

// NewCatalog creates the catalog presenter and subscribes it to the bus.
func NewCatalog(api CatalogAPI, store *cart.Store, bus *events.Bus, surface render.Surface, cdnURL string, logger *zap.Logger) *Catalog {
	p := &Catalog{
		api:      api,
		store:    store,
		bus:      bus,
		surface:  surface,
		logger:   logger,
		cdnURL:   cdnURL,
		products: make(map[string]domain.Product),
	}

	bus.Subscribe(events.ProductAddToCart, func(payload any) {
		data, ok := payload.(events.AddToCartPayload)
		if !ok {
			return
		}
		p.store.Add(data.Product)
	})

	bus.Subscribe(events.CartUpdate, func(payload any) {
		data, ok := payload.(events.CartUpdatePayload)
		if !ok {
			return
		}
		p.surface.SetBasketCount(len(data.Cart.Items))
	})

	return p
}

// Load fetches the catalog and renders it. A fetch failure is logged and
// yields an empty catalog, not a crash.
func (p *Catalog) Load(ctx context.Context) {
	products, err := p.api.FetchProducts(ctx, larekapi.ProductQuery{})
	if err != nil {
		p.logger.Error("Failed to load catalog", zap.Error(err))
		p.surface.RenderCatalog(nil)
		return
	}

	p.products = make(map[string]domain.Product, len(products))
	cards := make([]render.CatalogCard, 0, len(products))
	for _, product := range products {
		p.products[product.ID] = product
		cards = append(cards, render.NewCatalogCard(product, p.cdnURL))
	}
	p.surface.RenderCatalog(cards)
	p.surface.SetBasketCount(p.store.Len())
}

// Product looks up a loaded product by id.
func (p *Catalog) Product(id string) (domain.Product, bool) {
	product, ok := p.products[id]
	return product, ok
}
