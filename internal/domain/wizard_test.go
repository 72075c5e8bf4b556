package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWizard_Walkthrough(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepShipping, w.Step)
	assert.False(t, w.CanRetreat())
	assert.False(t, w.Retreat())
	assert.Equal(t, StepShipping, w.Step)

	assert.Equal(t, TransitionStep, w.Advance())
	assert.Equal(t, StepPayment, w.Step)
	assert.Equal(t, "Continue", w.ActionLabel())

	assert.Equal(t, TransitionStep, w.Advance())
	assert.Equal(t, StepReview, w.Step)
	assert.Equal(t, "Place Order", w.ActionLabel())

	assert.Equal(t, TransitionPlaced, w.Advance())
	assert.True(t, w.Placed)
	assert.Equal(t, StepReview, w.Step)

	assert.Equal(t, TransitionNone, w.Advance())
	assert.False(t, w.Retreat())
	assert.Equal(t, StepReview, w.Step)
}

func TestWizard_Retreat(t *testing.T) {
	w := NewWizard()
	w.Advance()
	w.Advance()

	assert.True(t, w.Retreat())
	assert.Equal(t, StepPayment, w.Step)
	assert.True(t, w.Retreat())
	assert.Equal(t, StepShipping, w.Step)
	assert.False(t, w.Retreat())
}

func TestCheckoutStep_Titles(t *testing.T) {
	assert.Equal(t, "Shipping Information", StepShipping.Title())
	assert.Equal(t, "Payment Details", StepPayment.Title())
	assert.Equal(t, "Confirm Order", StepReview.Title())
	assert.Equal(t, "Secure payment information", StepPayment.Description())
}

func TestRevealedSet(t *testing.T) {
	var r RevealedSet
	assert.False(t, r.Has(PanelRecommendations))
	assert.Empty(t, r.Panels())

	r.Reveal(PanelRecommendations, PanelAmbiance)
	r.Reveal(PanelRecommendations)
	r.Reveal(PanelOrdering)

	assert.True(t, r.Has(PanelAmbiance))
	assert.Equal(t, []Panel{PanelRecommendations, PanelAmbiance, PanelOrdering}, r.Panels())
}
