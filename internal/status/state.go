// Package status tracks the daemon's lifecycle state and announces changes on the bus.
package status

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
)

// State is a daemon lifecycle state.
type State string

const (
	Booting  State = "BOOTING"
	Ready    State = "READY"
	Degraded State = "DEGRADED"
	Stopping State = "STOPPING"
)

var validTransitions = map[State][]State{
	Booting:  {Ready, Degraded, Stopping},
	Ready:    {Degraded, Stopping},
	Degraded: {Ready, Stopping},
}

// Machine enforces the allowed transitions. Degraded carries a reason, e.g.
// the store that could not be reached.
type Machine struct {
	mu      sync.RWMutex
	current State
	reason  string
	since   time.Time
	bus     *bus.Bus
}

// NewMachine creates a machine in Booting.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{current: Booting, since: time.Now(), bus: b}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Snapshot returns the state, the reason given when entering it and when that happened.
func (m *Machine) Snapshot() (State, string, time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.reason, m.since
}

// Healthy reports whether the daemon can serve chat operations.
func (m *Machine) Healthy() bool {
	return m.Current() == Ready
}

// Transition moves to the given state. reason is kept until the next transition.
func (m *Machine) Transition(to State, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(validTransitions[m.current], to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.reason = reason
	m.since = time.Now()
	if m.bus != nil {
		m.bus.Publish(bus.Event{
			Kind:      bus.KindStatusChanged,
			Timestamp: m.since,
			Payload:   StatusChange{From: from, To: to, Reason: reason},
		})
	}
	return nil
}

// StatusChange is the payload of daemon.status_changed events.
type StatusChange struct {
	From   State
	To     State
	Reason string
}
