package render

import "github.com/larekshop/storefront/internal/events"

// Surface is the opaque render capability: it mounts page-level content and
// hosts the single modal overlay. It is an explicitly owned object passed by
// reference to every presenter that needs it, never looked up from ambient
// state. A missing surface is a packaging error and fails fast at startup.
type Surface interface {
	// RenderCatalog replaces the main page content with the given cards.
	RenderCatalog(cards []CatalogCard)
	// SetBasketCount updates the header basket counter.
	SetBasketCount(count int)
	// Notify shows a transient, non-blocking notification.
	Notify(message string)
	// SetLocked toggles the page scroll lock while the modal is open.
	SetLocked(locked bool)

	// ShowModal replaces the modal's single content slot and opens it.
	ShowModal(content View)
	// CloseModal hides the modal and empties its slot.
	CloseModal()
}

// Modal is the one owned modal controller. Presenters go through it instead
// of reaching for the overlay themselves, so open/close bookkeeping and the
// modal lifecycle events live in exactly one place.
type Modal struct {
	surface Surface
	bus     *events.Bus
	open    bool
	content View
}

// NewModal creates the modal controller and wires the page scroll lock to
// the modal lifecycle events.
func NewModal(surface Surface, bus *events.Bus) *Modal {
	m := &Modal{surface: surface, bus: bus}
	bus.Subscribe(events.ModalOpen, func(any) {
		surface.SetLocked(true)
	})
	bus.Subscribe(events.ModalClose, func(any) {
		surface.SetLocked(false)
	})
	return m
}

// Show replaces the modal content and opens the overlay.
func (m *Modal) Show(content View) {
	m.content = content
	m.open = true
	m.surface.ShowModal(content)
	m.bus.Publish(events.ModalOpen, nil)
}

// Close hides the overlay and drops the content.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.content = nil
	m.open = false
	m.surface.CloseModal()
	m.bus.Publish(events.ModalClose, nil)
}

// IsOpen reports whether the overlay is showing.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Current returns the content currently in the slot, or nil when closed.
// Presenters use it to decide whether a state change concerns the view they
// have on screen.
func (m *Modal) Current() View {
	return m.content
}
