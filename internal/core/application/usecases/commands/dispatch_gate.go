package commands

import (
	"errors"
	"sync"
)

// ErrDispatchInFlight is returned when a dispatch OTP operation is already
// running for the same pickup group.
var ErrDispatchInFlight = errors.New("a dispatch operation is already in flight for this group")

// DispatchGate serializes the OTP issue/verify exchange per pickup group.
// Each group key carries an independent in-flight flag, so a slow handover
// for one group never blocks operations on another.
type DispatchGate struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewDispatchGate creates an empty gate.
func NewDispatchGate() *DispatchGate {
	return &DispatchGate{inFlight: make(map[string]struct{})}
}

// TryAcquire claims the in-flight flag for a group key. Returns false when an
// operation for the same key already holds it.
func (g *DispatchGate) TryAcquire(groupKey string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[groupKey]; busy {
		return false
	}
	g.inFlight[groupKey] = struct{}{}
	return true
}

// Release clears the in-flight flag for a group key.
func (g *DispatchGate) Release(groupKey string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, groupKey)
}
