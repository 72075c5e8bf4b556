package domain

// CheckoutStep is a page of the checkout dialog
type CheckoutStep int

const (
	StepShipping CheckoutStep = 1
	StepPayment  CheckoutStep = 2
	StepReview   CheckoutStep = 3
)

func (s CheckoutStep) Title() string {
	switch s {
	case StepShipping:
		return "Shipping Information"
	case StepPayment:
		return "Payment Details"
	default:
		return "Confirm Order"
	}
}

func (s CheckoutStep) Description() string {
	switch s {
	case StepShipping:
		return "Enter your delivery address"
	case StepPayment:
		return "Secure payment information"
	default:
		return "Review your order details"
	}
}

// Wizard is the linear checkout state machine: shipping, payment, review, placed.
// Placed implies Step == StepReview.
type Wizard struct {
	Step   CheckoutStep `json:"step"`
	Placed bool         `json:"placed"`
}

// WizardTransition describes what an Advance call did
type WizardTransition int

const (
	TransitionNone WizardTransition = iota
	TransitionStep
	TransitionPlaced
)

func NewWizard() Wizard {
	return Wizard{Step: StepShipping}
}

// CanAdvance is false only once the order is placed
func (w Wizard) CanAdvance() bool {
	return !w.Placed
}

// CanRetreat is false on the first step and once the order is placed
func (w Wizard) CanRetreat() bool {
	return !w.Placed && w.Step > StepShipping
}

// Advance moves one step forward, or places the order from the review step
func (w *Wizard) Advance() WizardTransition {
	if !w.CanAdvance() {
		return TransitionNone
	}
	if w.Step < StepReview {
		w.Step++
		return TransitionStep
	}
	w.Step = StepReview
	w.Placed = true
	return TransitionPlaced
}

// Retreat moves one step back and reports whether anything changed
func (w *Wizard) Retreat() bool {
	if !w.CanRetreat() {
		return false
	}
	w.Step--
	return true
}

// ActionLabel is the caption of the forward button
func (w Wizard) ActionLabel() string {
	if w.Step < StepReview {
		return "Continue"
	}
	return "Place Order"
}
