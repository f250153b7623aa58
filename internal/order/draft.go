package order

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/domain"
	"github.com/larekshop/storefront/internal/events"
)

var (
	// ErrSubmitInProgress rejects a re-entrant submit while a submission is
	// outstanding.
	ErrSubmitInProgress = errors.New("order submission already in progress")
	// ErrDraftIncomplete rejects submission of a draft with unset fields.
	ErrDraftIncomplete = errors.New("order draft is incomplete")
	// ErrStepInvalid rejects completing a step whose validation fails.
	ErrStepInvalid = errors.New("checkout step is not valid")
)

// InvalidTransitionError reports an illegal draft state transition.
type InvalidTransitionError struct {
	From domain.DraftState
	To   domain.DraftState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid draft transition from %s to %s", e.From, e.To)
}

// Shipping and contact form field names.
const (
	FieldPayment = "payment"
	FieldAddress = "address"
	FieldEmail   = "email"
	FieldPhone   = "phone"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var nonDigits = regexp.MustCompile(`\D`)

// Submitter is the order-creation collaborator the draft submits to.
type Submitter interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResponse, error)
}

// Draft accumulates checkout form fields across the two steps, validates
// each step, and submits the finished order. It is exclusively owned by the
// checkout flow; nothing else mutates it.
type Draft struct {
	bus    *events.Bus
	logger *zap.Logger

	state   domain.DraftState
	payment domain.PaymentMethod
	address string
	email   string
	phone   string

	items    []string
	total    float64
	attached bool
}

// NewDraft creates an empty draft bound to the bus.
func NewDraft(bus *events.Bus, logger *zap.Logger) *Draft {
	return &Draft{
		bus:    bus,
		logger: logger,
		state:  domain.DraftEmpty,
	}
}

// State returns the current lifecycle state.
func (d *Draft) State() domain.DraftState {
	return d.state
}

// SetShippingField mutates a shipping-step field, then re-validates the
// step and publishes the result on order:validation.
func (d *Draft) SetShippingField(field, value string) domain.ValidationResult {
	switch field {
	case FieldPayment:
		d.payment = domain.PaymentMethod(value)
	case FieldAddress:
		d.address = value
	}
	result := d.ValidateShipping()
	d.bus.Publish(events.OrderValidation, events.ValidationPayload{
		Valid:  result.Valid,
		Errors: result.Errors,
	})
	return result
}

// SetContactField mutates a contact-step field, then re-validates the step
// and publishes the result on contacts:validation.
func (d *Draft) SetContactField(field, value string) domain.ValidationResult {
	switch field {
	case FieldEmail:
		d.email = value
	case FieldPhone:
		d.phone = value
	}
	result := d.ValidateContact()
	d.bus.Publish(events.ContactsValidation, events.ValidationPayload{
		Valid:  result.Valid,
		Errors: result.Errors,
	})
	return result
}

// ValidateShipping runs every shipping-step check and accumulates messages.
func (d *Draft) ValidateShipping() domain.ValidationResult {
	var errs []string
	if len(strings.TrimSpace(d.address)) < 5 {
		errs = append(errs, "enter a valid shipping address")
	}
	if !d.payment.IsValid() {
		errs = append(errs, "choose a payment method")
	}
	return domain.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateContact runs every contact-step check and accumulates messages.
func (d *Draft) ValidateContact() domain.ValidationResult {
	var errs []string
	if !emailPattern.MatchString(strings.TrimSpace(d.email)) {
		errs = append(errs, "enter a valid email")
	}
	if len(nonDigits.ReplaceAllString(d.phone, "")) < 10 {
		errs = append(errs, "enter a valid phone number")
	}
	return domain.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// CompleteShipping advances the draft past step 1. It fails if the step
// does not validate or the transition is illegal.
func (d *Draft) CompleteShipping() error {
	if result := d.ValidateShipping(); !result.Valid {
		return ErrStepInvalid
	}
	return d.transition(domain.DraftStep1Complete)
}

// CompleteContact advances the draft past step 2.
func (d *Draft) CompleteContact() error {
	if result := d.ValidateContact(); !result.Valid {
		return ErrStepInvalid
	}
	return d.transition(domain.DraftStep2Complete)
}

// AttachItemsAndTotal fixes the order's item list and total from the
// finalized cart, overwriting any previous attachment. Priceless products
// must already be excluded by the caller; the cart store's ProductIDs and
// Snapshot guarantee that.
func (d *Draft) AttachItemsAndTotal(ids []string, total float64) {
	d.items = append([]string(nil), ids...)
	d.total = total
	d.attached = true
}

// Request assembles the full order payload. It fails while any field is
// unset; submission is all-or-nothing, never partial.
func (d *Draft) Request() (domain.OrderRequest, error) {
	if !d.payment.IsValid() || d.address == "" || d.email == "" || d.phone == "" || !d.attached {
		return domain.OrderRequest{}, ErrDraftIncomplete
	}
	return domain.OrderRequest{
		Payment: d.payment,
		Email:   d.email,
		Phone:   d.phone,
		Address: d.address,
		Total:   d.total,
		Items:   append([]string(nil), d.items...),
	}, nil
}

// Submit sends the finished draft to the order API. A submit while another
// is outstanding returns ErrSubmitInProgress and emits nothing. On success
// it publishes order:success and clears the draft; on failure it publishes
// order:error and keeps the fields so the user can retry without retyping.
func (d *Draft) Submit(ctx context.Context, api Submitter) error {
	if d.state == domain.DraftSubmitting {
		return ErrSubmitInProgress
	}

	req, err := d.Request()
	if err != nil {
		return err
	}

	// A failed attempt sits in Failed until the retry begins.
	if d.state == domain.DraftFailed {
		if err := d.transition(domain.DraftStep2Complete); err != nil {
			return err
		}
	}
	if err := d.transition(domain.DraftSubmitting); err != nil {
		return err
	}

	resp, err := api.CreateOrder(ctx, req)
	if err != nil {
		if terr := d.transition(domain.DraftFailed); terr != nil {
			d.logger.Error("Draft state corrupted after failed submit", zap.Error(terr))
		}
		d.logger.Error("Order submission failed", zap.Error(err))
		d.bus.Publish(events.OrderError, events.OrderErrorPayload{Error: err.Error()})
		return err
	}

	if terr := d.transition(domain.DraftSucceeded); terr != nil {
		d.logger.Error("Draft state corrupted after successful submit", zap.Error(terr))
	}
	d.logger.Info("Order created",
		zap.String("order_id", resp.ID),
		zap.Float64("total", resp.Total))
	d.bus.Publish(events.OrderSuccess, events.OrderSuccessPayload{
		ID:    resp.ID,
		Total: resp.Total,
	})
	d.Clear()
	return nil
}

// Clear resets the draft to its initial empty state. Used after a
// successful order and on app reset.
func (d *Draft) Clear() {
	d.state = domain.DraftEmpty
	d.payment = ""
	d.address = ""
	d.email = ""
	d.phone = ""
	d.items = nil
	d.total = 0
	d.attached = false
}

func (d *Draft) transition(next domain.DraftState) error {
	if !d.state.CanTransitionTo(next) {
		return &InvalidTransitionError{From: d.state, To: next}
	}
	d.state = next
	return nil
}
