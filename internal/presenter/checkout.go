package presenter

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/cart"
	"github.com/larekshop/storefront/internal/events"
	"github.com/larekshop/storefront/internal/order"
	"github.com/larekshop/storefront/internal/render"
)

// Checkout drives the two-step order flow over one shared draft: shipping
// form, contact form, submission, and the success/error outcomes. Field
// changes live-validate through the draft; step submits are refused while
// the step is invalid, so an inconsistent draft can never reach the API.
type Checkout struct {
	ctx     context.Context
	draft   *order.Draft
	store   *cart.Store
	api     order.Submitter
	bus     *events.Bus
	modal   *render.Modal
	surface render.Surface
	logger  *zap.Logger

	shipping render.ShippingForm
	contact  render.ContactForm
}

// NewCheckout creates the checkout presenter and subscribes it to the bus.
func NewCheckout(ctx context.Context, draft *order.Draft, store *cart.Store, api order.Submitter, bus *events.Bus, modal *render.Modal, surface render.Surface, logger *zap.Logger) *Checkout {
	p := &Checkout{
		ctx:     ctx,
		draft:   draft,
		store:   store,
		api:     api,
		bus:     bus,
		modal:   modal,
		surface: surface,
		logger:  logger,
	}

	bus.Subscribe(events.OrderStart, func(any) { p.start() })

	bus.Subscribe(events.OrderPaymentChange, func(payload any) {
		if data, ok := payload.(events.FieldChangePayload); ok {
			p.shipping.Payment = data.Value
			p.draft.SetShippingField(order.FieldPayment, data.Value)
		}
	})
	bus.Subscribe(events.OrderAddressChange, func(payload any) {
		if data, ok := payload.(events.FieldChangePayload); ok {
			p.shipping.Address = data.Value
			p.draft.SetShippingField(order.FieldAddress, data.Value)
		}
	})
	bus.Subscribe(events.ContactsEmailChange, func(payload any) {
		if data, ok := payload.(events.FieldChangePayload); ok {
			p.contact.Email = data.Value
			p.draft.SetContactField(order.FieldEmail, data.Value)
		}
	})
	bus.Subscribe(events.ContactsPhoneChange, func(payload any) {
		if data, ok := payload.(events.FieldChangePayload); ok {
			p.contact.Phone = data.Value
			p.draft.SetContactField(order.FieldPhone, data.Value)
		}
	})

	bus.Subscribe(events.OrderValidation, func(payload any) {
		data, ok := payload.(events.ValidationPayload)
		if !ok {
			return
		}
		p.shipping.Errors = data.Errors
		p.shipping.CanSubmit = data.Valid
		if _, showing := p.modal.Current().(render.ShippingForm); showing {
			p.modal.Show(p.shipping)
		}
	})
	bus.Subscribe(events.ContactsValidation, func(payload any) {
		data, ok := payload.(events.ValidationPayload)
		if !ok {
			return
		}
		p.contact.Errors = data.Errors
		p.contact.CanSubmit = data.Valid
		if _, showing := p.modal.Current().(render.ContactForm); showing {
			p.modal.Show(p.contact)
		}
	})

	bus.Subscribe(events.OrderStep1Submit, func(payload any) {
		data, ok := payload.(events.Step1SubmitPayload)
		if !ok {
			return
		}
		p.submitStep1(data)
	})
	bus.Subscribe(events.OrderStep2Submit, func(payload any) {
		data, ok := payload.(events.Step2SubmitPayload)
		if !ok {
			return
		}
		p.submitStep2(data)
	})

	bus.Subscribe(events.OrderSuccess, func(payload any) {
		data, ok := payload.(events.OrderSuccessPayload)
		if !ok {
			return
		}
		p.finishSuccess(data)
	})
	bus.Subscribe(events.OrderError, func(payload any) {
		data, ok := payload.(events.OrderErrorPayload)
		if !ok {
			return
		}
		p.surface.Notify("order failed: " + data.Error)
	})

	return p
}

// start opens the shipping form. Checkout on an empty cart is refused, the
// same guard that keeps the proceed control disabled in the cart view.
func (p *Checkout) start() {
	if p.store.Len() == 0 {
		p.surface.Notify("cart is empty")
		return
	}
	result := p.draft.ValidateShipping()
	p.shipping.Errors = result.Errors
	p.shipping.CanSubmit = result.Valid
	p.modal.Show(p.shipping)
}

func (p *Checkout) submitStep1(data events.Step1SubmitPayload) {
	p.shipping.Payment = data.Payment
	p.shipping.Address = data.Address
	p.draft.SetShippingField(order.FieldPayment, data.Payment)
	p.draft.SetShippingField(order.FieldAddress, data.Address)

	if err := p.draft.CompleteShipping(); err != nil {
		p.surface.Notify("fill in shipping details first")
		return
	}

	result := p.draft.ValidateContact()
	p.contact.Errors = result.Errors
	p.contact.CanSubmit = result.Valid
	p.modal.Show(p.contact)
}

func (p *Checkout) submitStep2(data events.Step2SubmitPayload) {
	p.contact.Email = data.Email
	p.contact.Phone = data.Phone
	p.draft.SetContactField(order.FieldEmail, data.Email)
	p.draft.SetContactField(order.FieldPhone, data.Phone)

	if err := p.draft.CompleteContact(); err != nil {
		p.surface.Notify("fill in contact details first")
		return
	}

	// Finalize items and total from the cart as it stands right now.
	// Priceless lines never reach the payload.
	snapshot := p.store.Snapshot()
	p.draft.AttachItemsAndTotal(p.store.ProductIDs(), snapshot.Total)

	if err := p.draft.Submit(p.ctx, p.api); err != nil {
		if errors.Is(err, order.ErrSubmitInProgress) {
			p.surface.Notify("order is already being submitted")
		}
		// API failures already arrive through the order:error event.
		return
	}
}

// finishSuccess shows the confirmation with the charged total, then clears
// the cart and resets both forms.
func (p *Checkout) finishSuccess(data events.OrderSuccessPayload) {
	p.modal.Show(render.Confirmation{
		OrderID:    data.ID,
		TotalLabel: render.FormatTotal(data.Total),
	})
	p.store.Clear()
	p.shipping = render.ShippingForm{}
	p.contact = render.ContactForm{}
}
