package events

import "github.com/larekshop/storefront/internal/domain"

// Event names used across the storefront. Payload types are next to the
// names; handlers must tolerate extra payload fields for forward
// compatibility, so payloads are plain structs rather than closed unions.
const (
	ProductView           = "product:view"
	ProductAddToCart      = "product:addToCart"
	ProductRemoveFromCart = "product:removeFromCart"

	CartOpen   = "cart:open"
	CartUpdate = "cart:update"

	OrderStart       = "order:start"
	OrderStep1Submit = "order:step1Submit"
	OrderStep2Submit = "order:step2Submit"
	OrderSuccess     = "order:success"
	OrderError       = "order:error"

	ModalOpen  = "modal:open"
	ModalClose = "modal:close"

	// Per-field form input changes, published on every keystroke-equivalent.
	OrderPaymentChange  = "order.payment:change"
	OrderAddressChange  = "order.address:change"
	ContactsEmailChange = "contacts.email:change"
	ContactsPhoneChange = "contacts.phone:change"

	// Live validation results for the two checkout steps.
	OrderValidation    = "order:validation"
	ContactsValidation = "contacts:validation"
)

// ProductViewPayload asks for a product's detail view.
type ProductViewPayload struct {
	ID string
}

// AddToCartPayload carries the product to add; the full product rides along
// so the cart does not need a catalog round trip.
type AddToCartPayload struct {
	ID      string
	Product domain.Product
}

// RemoveFromCartPayload asks for a line's removal by product id.
type RemoveFromCartPayload struct {
	ID string
}

// CartUpdatePayload carries the authoritative cart snapshot after every
// mutation. Subscribers re-render from it rather than diffing.
type CartUpdatePayload struct {
	Cart domain.CartState
}

// Step1SubmitPayload carries the shipping form values at submit time.
type Step1SubmitPayload struct {
	Payment string
	Address string
}

// Step2SubmitPayload carries the contact form values at submit time.
type Step2SubmitPayload struct {
	Email string
	Phone string
}

// FieldChangePayload carries a single form input's new value.
type FieldChangePayload struct {
	Value string
}

// ValidationPayload reports a checkout step's validation outcome.
type ValidationPayload struct {
	Valid  bool
	Errors []string
}

// OrderSuccessPayload carries the server acknowledgement of the order.
type OrderSuccessPayload struct {
	ID    string
	Total float64
}

// OrderErrorPayload carries the failure surfaced by order submission.
type OrderErrorPayload struct {
	Error string
}
