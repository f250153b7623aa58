package render

import (
	"strconv"

	"github.com/larekshop/storefront/internal/domain"
)

// View is content the modal can display: one kind at a time, one slot.
type View interface {
	view()
}

// CatalogCard is one product card on the main page.
type CatalogCard struct {
	ID            string
	Title         string
	Category      string
	CategoryStyle string
	Image         string
	PriceLabel    string
	Purchasable   bool
}

// ProductDetail is the single-product modal view. ActionLabel flips between
// add and remove depending on cart membership at render time.
type ProductDetail struct {
	CatalogCard
	Description   string
	InCart        bool
	ActionLabel   string
	ActionEnabled bool
}

func (ProductDetail) view() {}

// CartRow is one removable line in the cart view.
type CartRow struct {
	Index      int
	ID         string
	Title      string
	PriceLabel string
	Count      int
}

// CartPanel is the cart modal view. Proceed is disabled while the cart is
// empty.
type CartPanel struct {
	Rows       []CartRow
	TotalLabel string
	CanProceed bool
}

func (CartPanel) view() {}

// ShippingForm is checkout step 1: payment method plus address.
type ShippingForm struct {
	Payment   string
	Address   string
	Errors    []string
	CanSubmit bool
}

func (ShippingForm) view() {}

// ContactForm is checkout step 2: email plus phone.
type ContactForm struct {
	Email     string
	Phone     string
	Errors    []string
	CanSubmit bool
}

func (ContactForm) view() {}

// Confirmation is the post-order success view showing the charged total.
type Confirmation struct {
	OrderID    string
	TotalLabel string
}

func (Confirmation) view() {}

// categoryStyles maps a product's category key to the display style the
// surface uses for it. Unknown categories fall back to "other".
var categoryStyles = map[string]string{
	"soft-skill": "soft",
	"hard-skill": "hard",
	"additional": "additional",
	"button":     "button",
	"other":      "other",
}

// CategoryStyle looks up the display style for a category key.
func CategoryStyle(category string) string {
	if style, ok := categoryStyles[category]; ok {
		return style
	}
	return "other"
}

// FormatPrice renders a price for display; priceless products show as
// "priceless" everywhere.
func FormatPrice(price *float64) string {
	if price == nil {
		return "priceless"
	}
	return strconv.FormatFloat(*price, 'f', -1, 64) + " credits"
}

// FormatTotal renders a computed total.
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64) + " credits"
}

// NewCatalogCard builds the card view model for a product. Image paths are
// completed against the CDN base URL.
func NewCatalogCard(p domain.Product, cdnURL string) CatalogCard {
	return CatalogCard{
		ID:            p.ID,
		Title:         p.Title,
		Category:      p.Category,
		CategoryStyle: CategoryStyle(p.Category),
		Image:         cdnURL + p.Image,
		PriceLabel:    FormatPrice(p.Price),
		Purchasable:   !p.Priceless(),
	}
}
