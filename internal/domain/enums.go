package domain

// PaymentMethod is the payment choice made on the shipping step.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// IsValid checks if the payment method is a recognized one.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentCash:
		return true
	default:
		return false
	}
}

// DraftState represents where an order draft is in the checkout lifecycle.
type DraftState string

const (
	DraftEmpty         DraftState = "EMPTY"
	DraftStep1Complete DraftState = "STEP1_COMPLETE"
	DraftStep2Complete DraftState = "STEP2_COMPLETE"
	DraftSubmitting    DraftState = "SUBMITTING"
	DraftSucceeded     DraftState = "SUCCEEDED"
	DraftFailed        DraftState = "FAILED"
)

// IsValid checks if the draft state is valid.
func (s DraftState) IsValid() bool {
	switch s {
	case DraftEmpty,
		DraftStep1Complete,
		DraftStep2Complete,
		DraftSubmitting,
		DraftSucceeded,
		DraftFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a draft state transition is legal.
// A failed submission returns the draft to Step2Complete so the user can
// resubmit without retyping; there is no automatic retry.
func (s DraftState) CanTransitionTo(next DraftState) bool {
	switch s {
	case DraftEmpty:
		return next == DraftStep1Complete
	case DraftStep1Complete:
		return next == DraftStep1Complete || next == DraftStep2Complete
	case DraftStep2Complete:
		return next == DraftStep1Complete ||
			next == DraftStep2Complete ||
			next == DraftSubmitting
	case DraftSubmitting:
		return next == DraftSucceeded || next == DraftFailed
	case DraftFailed:
		return next == DraftStep2Complete
	case DraftSucceeded:
		return next == DraftEmpty
	default:
		return false
	}
}
