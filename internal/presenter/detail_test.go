package presenter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larekshop/storefront/internal/events"
	"github.com/larekshop/storefront/internal/render"
)

func newDetail(f *fixture) *Detail {
	return NewDetail(context.Background(), f.api, f.store, f.bus, f.modal, f.surface, "https://cdn.test", nopLogger())
}

func TestDetail_ViewShowsProduct(t *testing.T) {
	f := newFixture(t, testProducts()...)
	newDetail(f)

	f.bus.Publish(events.ProductView, events.ProductViewPayload{ID: "a"})

	detail, ok := f.surface.lastModal().(render.ProductDetail)
	require.True(t, ok)
	assert.Equal(t, "Widget", detail.Title)
	assert.False(t, detail.InCart)
	assert.Equal(t, "add to cart", detail.ActionLabel)
	assert.True(t, f.surface.locked, "open modal locks the page")
}

func TestDetail_LabelReflectsCartMembership(t *testing.T) {
	f := newFixture(t, testProducts()...)
	newDetail(f)
	f.store.Add(testProducts()[0])

	f.bus.Publish(events.ProductView, events.ProductViewPayload{ID: "a"})

	detail := f.surface.lastModal().(render.ProductDetail)
	assert.True(t, detail.InCart)
	assert.Equal(t, "remove from cart", detail.ActionLabel)
}

func TestDetail_ToggleFlipsMembership(t *testing.T) {
	f := newFixture(t, testProducts()...)
	p := newDetail(f)

	f.bus.Publish(events.ProductView, events.ProductViewPayload{ID: "a"})

	p.Toggle()
	assert.True(t, f.store.Contains("a"))
	detail := f.surface.lastModal().(render.ProductDetail)
	assert.Equal(t, "remove from cart", detail.ActionLabel, "toggle re-renders the label")

	p.Toggle()
	assert.False(t, f.store.Contains("a"))
	detail = f.surface.lastModal().(render.ProductDetail)
	assert.Equal(t, "add to cart", detail.ActionLabel)
}

func TestDetail_CartChangeThroughOtherPathRefreshesLabel(t *testing.T) {
	f := newFixture(t, testProducts()...)
	newDetail(f)

	f.bus.Publish(events.ProductView, events.ProductViewPayload{ID: "a"})

	// The cart changes without going through the detail view.
	f.store.Add(testProducts()[0])

	detail := f.surface.lastModal().(render.ProductDetail)
	assert.True(t, detail.InCart, "open detail view tracks cart updates")
}

func TestDetail_NoRenderAfterModalClosed(t *testing.T) {
	f := newFixture(t, testProducts()...)
	newDetail(f)

	f.bus.Publish(events.ProductView, events.ProductViewPayload{ID: "a"})
	f.modal.Close()
	rendered := len(f.surface.modals)

	f.store.Add(testProducts()[0])

	assert.Len(t, f.surface.modals, rendered, "closed detail view stops re-rendering")
	assert.False(t, f.surface.locked)
}

func TestDetail_FetchFailureNotifies(t *testing.T) {
	f := newFixture(t, testProducts()...)
	f.api.fetchErr = errors.New("backend down")
	newDetail(f)

	f.bus.Publish(events.ProductView, events.ProductViewPayload{ID: "a"})

	assert.Empty(t, f.surface.modals)
	require.Len(t, f.surface.notices, 1)
	assert.Contains(t, f.surface.notices[0], "could not load product")
}

func TestDetail_ToggleWithoutOpenViewIsNoop(t *testing.T) {
	f := newFixture(t, testProducts()...)
	p := newDetail(f)

	require.NotPanics(t, func() { p.Toggle() })
	assert.Zero(t, f.store.Len())
}
