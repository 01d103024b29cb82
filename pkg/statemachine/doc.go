// Package statemachine provides a small generic finite-state machine.
//
// States and events are any comparable types, typically string-backed enums:
//
//	type FieldState string
//	type FieldEvent string
//
//	sm := statemachine.MustNew[FieldState, FieldEvent](Pristine,
//	    statemachine.WithTransition(Pristine, Valid, Passed),
//	    statemachine.WithTransition(Pristine, Invalid, Failed),
//	    statemachine.WithTransitionFromAny([]FieldState{Valid, Invalid}, Pristine, Cleared),
//	)
//	state, err := sm.Fire(Passed)
//
// The transition table is fixed at construction; conflicting definitions
// fail New with ErrConflictingTransition. Firing an undefined event returns
// *ErrNoTransitionAvailable (check with IsNoTransitionAvailableError) and
// leaves the state untouched. All methods are safe for concurrent use.
package statemachine
