package render

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/larekshop/storefront/internal/domain"
)

func priced(v float64) *float64 { return &v }

func TestTextSurface_Catalog(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTextSurface(&buf)

	surface.RenderCatalog([]CatalogCard{
		NewCatalogCard(domain.Product{
			ID: "a", Title: "Widget", Category: "soft-skill", Image: "/widget.svg", Price: priced(100),
		}, "https://cdn.test"),
		NewCatalogCard(domain.Product{
			ID: "b", Title: "Gizmo", Category: "mystery", Image: "/gizmo.svg",
		}, "https://cdn.test"),
	})

	g := goldie.New(t)
	g.Assert(t, "catalog", buf.Bytes())
}

func TestTextSurface_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTextSurface(&buf)

	surface.RenderCatalog(nil)

	g := goldie.New(t)
	g.Assert(t, "catalog_empty", buf.Bytes())
}

func TestTextSurface_CartPanel(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTextSurface(&buf)

	surface.ShowModal(CartPanel{
		Rows: []CartRow{
			{Index: 1, ID: "a", Title: "Widget", Count: 2, PriceLabel: "100 credits"},
			{Index: 2, ID: "b", Title: "Gizmo", Count: 1, PriceLabel: "priceless"},
		},
		TotalLabel: "200 credits",
		CanProceed: true,
	})

	g := goldie.New(t)
	g.Assert(t, "cart", buf.Bytes())
}

func TestTextSurface_EmptyCartPanel(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTextSurface(&buf)

	surface.ShowModal(CartPanel{
		TotalLabel: "0 credits",
		CanProceed: false,
	})

	g := goldie.New(t)
	g.Assert(t, "cart_empty", buf.Bytes())
}

func TestTextSurface_ShippingForm(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTextSurface(&buf)

	surface.ShowModal(ShippingForm{
		Address: "abc",
		Errors:  []string{"enter a valid shipping address", "choose a payment method"},
	})

	g := goldie.New(t)
	g.Assert(t, "shipping_form", buf.Bytes())
}

func TestTextSurface_Confirmation(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTextSurface(&buf)

	surface.ShowModal(Confirmation{OrderID: "order-1", TotalLabel: "100 credits"})

	g := goldie.New(t)
	g.Assert(t, "confirmation", buf.Bytes())
}

func TestCategoryStyle(t *testing.T) {
	assert.Equal(t, "soft", CategoryStyle("soft-skill"))
	assert.Equal(t, "hard", CategoryStyle("hard-skill"))
	assert.Equal(t, "button", CategoryStyle("button"))
	assert.Equal(t, "other", CategoryStyle("never-seen-before"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "priceless", FormatPrice(nil))
	assert.Equal(t, "100 credits", FormatPrice(priced(100)))
	assert.Equal(t, "450.5 credits", FormatPrice(priced(450.5)))
	assert.Equal(t, "0 credits", FormatTotal(0))
}

func TestNewCatalogCard(t *testing.T) {
	card := NewCatalogCard(domain.Product{
		ID:       "a",
		Title:    "Widget",
		Category: "soft-skill",
		Image:    "/widget.svg",
		Price:    priced(100),
	}, "https://cdn.test")

	assert.Equal(t, "https://cdn.test/widget.svg", card.Image)
	assert.Equal(t, "soft", card.CategoryStyle)
	assert.Equal(t, "100 credits", card.PriceLabel)
	assert.True(t, card.Purchasable)

	free := NewCatalogCard(domain.Product{ID: "b"}, "")
	assert.Equal(t, "priceless", free.PriceLabel)
	assert.False(t, free.Purchasable)
}
