package render

import (
	"fmt"
	"io"
)

// TextSurface renders the storefront as plain text on a writer. It is the
// terminal stand-in for the page: the main area is the catalog listing, the
// modal is a delimited block, notifications are single prefixed lines.
type TextSurface struct {
	w      io.Writer
	locked bool
}

// NewTextSurface creates a surface writing to w.
func NewTextSurface(w io.Writer) *TextSurface {
	return &TextSurface{w: w}
}

func (s *TextSurface) RenderCatalog(cards []CatalogCard) {
	fmt.Fprintln(s.w, "=== catalog ===")
	if len(cards) == 0 {
		fmt.Fprintln(s.w, "(no products)")
		return
	}
	for _, card := range cards {
		fmt.Fprintf(s.w, "[%s] %s (%s) %s\n", card.ID, card.Title, card.CategoryStyle, card.PriceLabel)
	}
}

func (s *TextSurface) SetBasketCount(count int) {
	fmt.Fprintf(s.w, "basket: %d\n", count)
}

func (s *TextSurface) Notify(message string) {
	fmt.Fprintf(s.w, "! %s\n", message)
}

func (s *TextSurface) SetLocked(locked bool) {
	s.locked = locked
}

func (s *TextSurface) ShowModal(content View) {
	switch v := content.(type) {
	case ProductDetail:
		fmt.Fprintln(s.w, "--- product ---")
		fmt.Fprintf(s.w, "%s (%s) %s\n", v.Title, v.CategoryStyle, v.PriceLabel)
		if v.Description != "" {
			fmt.Fprintln(s.w, v.Description)
		}
		if v.ActionEnabled {
			fmt.Fprintf(s.w, "> %s\n", v.ActionLabel)
		} else {
			fmt.Fprintln(s.w, "> not purchasable")
		}
	case CartPanel:
		fmt.Fprintln(s.w, "--- cart ---")
		if len(v.Rows) == 0 {
			fmt.Fprintln(s.w, "(empty)")
		}
		for _, row := range v.Rows {
			fmt.Fprintf(s.w, "%d. %s x%d %s\n", row.Index, row.Title, row.Count, row.PriceLabel)
		}
		fmt.Fprintf(s.w, "total: %s\n", v.TotalLabel)
		if v.CanProceed {
			fmt.Fprintln(s.w, "> checkout available")
		} else {
			fmt.Fprintln(s.w, "> checkout blocked: cart is empty")
		}
	case ShippingForm:
		fmt.Fprintln(s.w, "--- order: shipping ---")
		fmt.Fprintf(s.w, "payment: %s\n", orDash(v.Payment))
		fmt.Fprintf(s.w, "address: %s\n", orDash(v.Address))
		s.renderFormFooter(v.Errors, v.CanSubmit, "next")
	case ContactForm:
		fmt.Fprintln(s.w, "--- order: contacts ---")
		fmt.Fprintf(s.w, "email: %s\n", orDash(v.Email))
		fmt.Fprintf(s.w, "phone: %s\n", orDash(v.Phone))
		s.renderFormFooter(v.Errors, v.CanSubmit, "submit")
	case Confirmation:
		fmt.Fprintln(s.w, "--- order placed ---")
		fmt.Fprintf(s.w, "order id: %s\n", v.OrderID)
		fmt.Fprintf(s.w, "charged: %s\n", v.TotalLabel)
	default:
		fmt.Fprintf(s.w, "--- %T ---\n", content)
	}
}

func (s *TextSurface) CloseModal() {
	fmt.Fprintln(s.w, "(modal closed)")
}

func (s *TextSurface) renderFormFooter(errs []string, canSubmit bool, action string) {
	for _, e := range errs {
		fmt.Fprintf(s.w, "error: %s\n", e)
	}
	if canSubmit {
		fmt.Fprintf(s.w, "> %s available\n", action)
	} else {
		fmt.Fprintf(s.w, "> %s blocked\n", action)
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
