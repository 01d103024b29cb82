package statemachine

import (
	"fmt"
	"sync"
)

// Machine is a finite state machine over comparable state and event types.
// Transitions are looked up in a nested map [from][event] in O(1).
// It is safe for concurrent use.
type Machine[S, E comparable] struct {
	mu          sync.RWMutex
	initial     S
	current     S
	transitions map[S]map[E]S
}

// Option configures a machine during construction.
type Option[S, E comparable] func(*Machine[S, E]) error

// New creates a machine starting in initial.
func New[S, E comparable](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E]S),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics on a misconfigured transition table.
func MustNew[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition registers from --event--> to.
// Registering a different target for the same from/event pair is an error.
func WithTransition[S, E comparable](from, to S, event E) Option[S, E] {
	return func(m *Machine[S, E]) error {
		return m.add(from, to, event)
	}
}

// WithTransitionFromAny registers event leading to `to` from each state in froms.
func WithTransitionFromAny[S, E comparable](froms []S, to S, event E) Option[S, E] {
	return func(m *Machine[S, E]) error {
		for _, from := range froms {
			if err := m.add(from, to, event); err != nil {
				return err
			}
		}
		return nil
	}
}

func (m *Machine[S, E]) add(from, to S, event E) error {
	byEvent, ok := m.transitions[from]
	if !ok {
		byEvent = make(map[E]S)
		m.transitions[from] = byEvent
	}
	if existing, ok := byEvent[event]; ok && existing != to {
		return fmt.Errorf("%w: %v --%v--> %v and %v", ErrConflictingTransition, from, event, existing, to)
	}
	byEvent[event] = to
	return nil
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire applies event to the current state and returns the new state.
// The state is left unchanged when no transition is defined.
func (m *Machine[S, E]) Fire(event E) (S, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	to, ok := m.transitions[m.current][event]
	if !ok {
		return m.current, newErrNoTransitionAvailable(m.current, event)
	}

	m.current = to
	return to, nil
}

// CanFire reports whether event is defined for the current state.
func (m *Machine[S, E]) CanFire(event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.transitions[m.current][event]
	return ok
}

// Reset returns the machine to its initial state.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
