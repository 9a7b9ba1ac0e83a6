package reschedule

import (
	"fmt"
	"sync"
)

// IsTerminal reports whether a gesture in s has finished its drop.
func IsTerminal(s State) bool {
	switch s {
	case StateCommitted, StateFailed, StateRejected:
		return true
	default:
		return false
	}
}

// Machine holds the state of a single gesture. The zero value is Idle.
type Machine struct {
	mu    sync.Mutex
	state State
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current()
}

// Transition moves the machine from -> to. The caller supplies the expected
// prior state so concurrent misuse surfaces as an error.
func (m *Machine) Transition(from, to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.current()
	if cur != from {
		return fmt.Errorf("%w: expected %s, got %s", ErrInvalidTransition, from, cur)
	}
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	m.state = to
	return nil
}

func (m *Machine) current() State {
	if m.state == "" {
		return StateIdle
	}
	return m.state
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateDragging
	case StateDragging:
		return to == StateDroppedValid || to == StateDroppedInvalid || to == StateIdle
	case StateDroppedValid:
		return to == StateSubmitting
	case StateDroppedInvalid:
		return to == StateRejected
	case StateSubmitting:
		return to == StateCommitted || to == StateFailed
	case StateCommitted, StateFailed, StateRejected:
		return to == StateIdle
	default:
		return false
	}
}
