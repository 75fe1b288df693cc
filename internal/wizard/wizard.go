// File path: internal/wizard/wizard.go

// Package wizard drives the three-step cylinder identification flow:
// select a type, verify the details, confirm.
//
// The controller is a plain owned value. It does no locking; the session
// that owns it serialises access.
package wizard

import (
	"strings"

	"github.com/immensecng/cylinder-retest/internal/catalog"
)

// Step is a position in the identification flow.
type Step int

const (
	StepSelectType   Step = 1
	StepVerifyDetail Step = 2
	StepConfirmation Step = 3
)

const (
	firstStep = StepSelectType
	lastStep  = StepConfirmation
)

var stepLabels = map[Step]string{
	StepSelectType:   "Select Type",
	StepVerifyDetail: "Verify Details",
	StepConfirmation: "Confirmation",
}

// Label returns the progress-bar caption for s.
func (s Step) Label() string {
	return stepLabels[s]
}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepSelectType, StepVerifyDetail, StepConfirmation}
}

// State is a read-only copy of the controller's data.
type State struct {
	Step         Step                 `json:"step"`
	SelectedType catalog.CylinderType `json:"selected_type,omitempty"`
	Marks        string               `json:"marks,omitempty"`
}

// HasSelection reports whether a cylinder type has been chosen.
func (s State) HasSelection() bool {
	return s.SelectedType != ""
}

// Terminal reports whether the flow sits on its confirmation step.
func (s State) Terminal() bool {
	return s.Step == lastStep
}

// Controller owns the wizard state.
type Controller struct {
	state State
}

// New returns a controller positioned on the first step.
func New() *Controller {
	return &Controller{state: State{Step: firstStep}}
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.state.Step
}

// SelectedType returns the chosen cylinder type, empty when unset.
func (c *Controller) SelectedType() catalog.CylinderType {
	return c.state.SelectedType
}

// Marks returns the identification marks captured on the verify step.
func (c *Controller) Marks() string {
	return c.state.Marks
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() State {
	return c.state
}

// SelectOption records the chosen type and moves on. Callers offer only
// enumerated options, so t is not checked here.
func (c *Controller) SelectOption(t catalog.CylinderType) {
	c.state.SelectedType = t
	c.Advance()
}

// Advance moves one step forward. It is a no-op on the confirmation step.
func (c *Controller) Advance() {
	if c.state.Step < lastStep {
		c.state.Step++
	}
}

// Retreat moves one step back. It is a no-op on the first step.
func (c *Controller) Retreat() {
	if c.state.Step > firstStep {
		c.state.Step--
	}
}

// Reset returns to the first step and forgets everything collected.
func (c *Controller) Reset() {
	c.state = State{Step: firstStep}
}

// SetMarks stores the free-text identification marks.
func (c *Controller) SetMarks(marks string) {
	c.state.Marks = strings.TrimSpace(marks)
}
