package presenter

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/cart"
	"github.com/larekshop/storefront/internal/domain"
	"github.com/larekshop/storefront/internal/events"
	"github.com/larekshop/storefront/internal/larekapi"
	"github.com/larekshop/storefront/internal/render"
)

// fakeSurface records every render call for assertion.
type fakeSurface struct {
	catalogs [][]render.CatalogCard
	counts   []int
	notices  []string
	locked   bool
	modals   []render.View
	closes   int
}

func (s *fakeSurface) RenderCatalog(cards []render.CatalogCard) {
	s.catalogs = append(s.catalogs, cards)
}
func (s *fakeSurface) SetBasketCount(count int)  { s.counts = append(s.counts, count) }
func (s *fakeSurface) Notify(message string)     { s.notices = append(s.notices, message) }
func (s *fakeSurface) SetLocked(locked bool)     { s.locked = locked }
func (s *fakeSurface) ShowModal(v render.View)   { s.modals = append(s.modals, v) }
func (s *fakeSurface) CloseModal()               { s.closes++ }

func (s *fakeSurface) lastModal() render.View {
	if len(s.modals) == 0 {
		return nil
	}
	return s.modals[len(s.modals)-1]
}

func (s *fakeSurface) lastCount() int {
	if len(s.counts) == 0 {
		return -1
	}
	return s.counts[len(s.counts)-1]
}

// fakeAPI serves a fixed product list and scripted order outcomes.
type fakeAPI struct {
	products  []domain.Product
	listErr   error
	fetchErr  error
	orderResp *domain.OrderResponse
	orderErr  error

	orders []domain.OrderRequest
}

func (a *fakeAPI) FetchProducts(ctx context.Context, q larekapi.ProductQuery) ([]domain.Product, error) {
	if a.listErr != nil {
		return nil, a.listErr
	}
	return a.products, nil
}

func (a *fakeAPI) FetchProduct(ctx context.Context, id string) (*domain.Product, error) {
	if a.fetchErr != nil {
		return nil, a.fetchErr
	}
	for _, p := range a.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, &larekapi.APIError{Message: "product not found"}
}

func (a *fakeAPI) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResponse, error) {
	a.orders = append(a.orders, req)
	if a.orderErr != nil {
		return nil, a.orderErr
	}
	return a.orderResp, nil
}

type fixture struct {
	bus     *events.Bus
	store   *cart.Store
	surface *fakeSurface
	modal   *render.Modal
	api     *fakeAPI
}

func newFixture(t *testing.T, products ...domain.Product) *fixture {
	t.Helper()
	bus := events.NewBus()
	surface := &fakeSurface{}
	return &fixture{
		bus:     bus,
		store:   cart.NewStore(bus),
		surface: surface,
		modal:   render.NewModal(surface, bus),
		api:     &fakeAPI{products: products},
	}
}

func priced(v float64) *float64 { return &v }

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "a", Title: "Widget", Category: "soft-skill", Image: "/a.svg", Price: priced(100)},
		{ID: "b", Title: "Gizmo", Category: "other", Image: "/b.svg", Price: nil},
	}
}

func nopLogger() *zap.Logger { return zap.NewNop() }
