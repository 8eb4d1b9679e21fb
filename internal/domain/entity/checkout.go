package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CheckoutStep is one stage of the linear order-placement wizard.
type CheckoutStep string

const (
	CheckoutStepInfo     CheckoutStep = "info"
	CheckoutStepDelivery CheckoutStep = "delivery"
	CheckoutStepPayment  CheckoutStep = "payment"
	CheckoutStepSuccess  CheckoutStep = "success"

	// CheckoutStepFailed is entered when the final submission fails. Unlike
	// the original flow, which left the shopper silently stuck on the payment
	// step, the failure is explicit and retryable.
	CheckoutStepFailed CheckoutStep = "failed"
)

// CheckoutContact holds the fields collected on the info step.
type CheckoutContact struct {
	Name     string
	Email    string
	Phone    string
	Telegram string // Optional.
}

// CheckoutDelivery holds the fields collected on the delivery step.
type CheckoutDelivery struct {
	City    string
	Address string
}

// CheckoutSession is the server-side state of one checkout wizard run,
// bound to a cart token. Transitions are pure; persistence is the caller's
// concern.
type CheckoutSession struct {
	CartToken     uuid.UUID
	Step          CheckoutStep
	Contact       CheckoutContact
	Delivery      CheckoutDelivery
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCheckoutSession starts a session on the info step. CreatedAt is stamped
// here so a rerun over a finished session carries its own creation time.
func NewCheckoutSession(cartToken uuid.UUID) *CheckoutSession {
	return &CheckoutSession{
		CartToken: cartToken,
		Step:      CheckoutStepInfo,
		CreatedAt: time.Now().UTC(),
	}
}

// SubmitInfo records contact fields and advances info → delivery.
// Name, email and phone must all be non-empty.
func (s *CheckoutSession) SubmitInfo(contact CheckoutContact) bool {
	if s.Step != CheckoutStepInfo {
		return false
	}
	if strings.TrimSpace(contact.Name) == "" ||
		strings.TrimSpace(contact.Email) == "" ||
		strings.TrimSpace(contact.Phone) == "" {
		return false
	}

	s.Contact = contact
	s.Step = CheckoutStepDelivery

	return true
}

// SubmitDelivery records delivery fields and advances delivery → payment.
// City and address must both be non-empty.
func (s *CheckoutSession) SubmitDelivery(delivery CheckoutDelivery) bool {
	if s.Step != CheckoutStepDelivery {
		return false
	}
	if strings.TrimSpace(delivery.City) == "" || strings.TrimSpace(delivery.Address) == "" {
		return false
	}

	s.Delivery = delivery
	s.Step = CheckoutStepPayment

	return true
}

// Back steps the wizard one stage backward: delivery → info or
// payment → delivery. Any other state is unaffected.
func (s *CheckoutSession) Back() bool {
	switch s.Step {
	case CheckoutStepDelivery:
		s.Step = CheckoutStepInfo
	case CheckoutStepPayment:
		s.Step = CheckoutStepDelivery
	default:
		return false
	}

	return true
}

// MarkSuccess finishes the session. Success is terminal; a new checkout
// starts a fresh session.
func (s *CheckoutSession) MarkSuccess() {
	s.Step = CheckoutStepSuccess
	s.FailureReason = ""
}

// MarkFailed records a submission failure so the client has a visible error
// state instead of an unresponsive payment step.
func (s *CheckoutSession) MarkFailed(reason string) {
	s.Step = CheckoutStepFailed
	s.FailureReason = reason
}

// Retry returns a failed session to the payment step for another attempt.
func (s *CheckoutSession) Retry() bool {
	if s.Step != CheckoutStepFailed {
		return false
	}

	s.Step = CheckoutStepPayment
	s.FailureReason = ""

	return true
}

// FullAddress is the concatenated "city, street" form persisted on orders.
func (s *CheckoutSession) FullAddress() string {
	return s.Delivery.City + ", " + s.Delivery.Address
}
