package cart

import (
	"github.com/larekshop/storefront/internal/domain"
	"github.com/larekshop/storefront/internal/events"
)

// Store is the single owner of cart state. Lines keep insertion order and
// are unique by product id. Every mutation publishes a cart:update event
// carrying a freshly computed snapshot, so observers never see a
// half-updated cart.
type Store struct {
	items []domain.CartItem
	bus   *events.Bus
}

// NewStore creates an empty cart bound to the bus.
func NewStore(bus *events.Bus) *Store {
	return &Store{bus: bus}
}

// Add puts a product in the cart. Re-adding an existing product increments
// its line count instead of duplicating the line.
func (s *Store) Add(product domain.Product) {
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Count++
			s.emitUpdate()
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Product: product, Count: 1})
	s.emitUpdate()
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op that still publishes the (unchanged) snapshot.
func (s *Store) Remove(productID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.emitUpdate()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items = nil
	s.emitUpdate()
}

// Snapshot returns the current cart state. Pure, no side effect. The total
// excludes priceless lines and can never go negative since counts are >= 1
// and prices are non-negative.
func (s *Store) Snapshot() domain.CartState {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	var total float64
	for _, item := range s.items {
		if item.Product.Priceless() {
			continue
		}
		total += item.Product.PriceValue() * float64(item.Count)
	}
	return domain.CartState{Items: items, Total: total}
}

// ProductIDs returns the ids of orderable lines in line order. Priceless
// products cannot be purchased and are excluded.
func (s *Store) ProductIDs() []string {
	ids := make([]string, 0, len(s.items))
	for _, item := range s.items {
		if item.Product.Priceless() {
			continue
		}
		ids = append(ids, item.Product.ID)
	}
	return ids
}

// Contains reports whether the cart holds a line for productID.
func (s *Store) Contains(productID string) bool {
	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// Len returns the number of lines, which is what the header basket counter
// shows.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) emitUpdate() {
	// Snapshot first so subscribers observe a fully updated cart.
	s.bus.Publish(events.CartUpdate, events.CartUpdatePayload{Cart: s.Snapshot()})
}
