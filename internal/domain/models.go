package domain

// Product is an immutable catalog item as returned by the store API.
// A nil Price marks a priceless product: it can be browsed and carried in
// the cart but never counts toward a total and never reaches an order.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
}

// Priceless reports whether the product has no price.
func (p Product) Priceless() bool {
	return p.Price == nil
}

// PriceValue returns the price, or 0 for a priceless product.
func (p Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// CartItem is one line in the cart: a product with a quantity.
// Lines are unique by product id; quantity is always >= 1.
type CartItem struct {
	Product Product
	Count   int
}

// CartState is a point-in-time read of the cart. Total sums price*count
// over lines whose product has a price; priceless lines contribute nothing.
type CartState struct {
	Items []CartItem
	Total float64
}

// OrderRequest is the fully populated order payload sent to the store API.
type OrderRequest struct {
	Payment PaymentMethod `json:"payment"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address string        `json:"address"`
	Total   float64       `json:"total"`
	Items   []string      `json:"items"`
}

// OrderResponse is the server's acknowledgement of a created order.
type OrderResponse struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// ValidationResult carries the outcome of validating one checkout step.
// Errors accumulate: every check runs on every mutation, nothing
// short-circuits, so the list always reflects all failing checks.
type ValidationResult struct {
	Valid  bool
	Errors []string
}
