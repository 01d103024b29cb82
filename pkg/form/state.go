package form

import "github.com/dmitrymomot/relato/pkg/statemachine"

// State is the display state of one field.
type State string

const (
	StatePristine State = "pristine"
	StateValid    State = "valid"
	StateInvalid  State = "invalid"
)

type fieldEvent string

const (
	eventPassed fieldEvent = "passed"
	eventFailed fieldEvent = "failed"
	eventReset  fieldEvent = "reset"
)

var allFieldStates = []State{StatePristine, StateValid, StateInvalid}

func newFieldMachine() *statemachine.Machine[State, fieldEvent] {
	return statemachine.MustNew(StatePristine,
		statemachine.WithTransitionFromAny(allFieldStates, StateValid, eventPassed),
		statemachine.WithTransitionFromAny(allFieldStates, StateInvalid, eventFailed),
		statemachine.WithTransitionFromAny(allFieldStates, StatePristine, eventReset),
	)
}

// phase is the lifecycle of the whole form.
type phase string

const (
	phaseEditing    phase = "editing"
	phaseConfirming phase = "confirming"
)

type phaseEvent string

const (
	eventSucceeded    phaseEvent = "succeeded"
	eventAcknowledged phaseEvent = "acknowledged"
)

func newPhaseMachine() *statemachine.Machine[phase, phaseEvent] {
	return statemachine.MustNew(phaseEditing,
		statemachine.WithTransition(phaseEditing, phaseConfirming, eventSucceeded),
		statemachine.WithTransition(phaseConfirming, phaseEditing, eventAcknowledged),
	)
}
