package scenarios

import (
	"fmt"
	"sync"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"

	"github.com/google/uuid"
)

// Registry is the ordered, session-held collection of saved scenarios.
// Insertion order is display order. IDs are UUIDs rather than timestamps so
// two saves in the same clock tick can never collide.
type Registry struct {
	mu        sync.Mutex
	scenarios []Scenario
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Save appends a new scenario wrapping result and returns it. The display
// name is derived from the collection size at save time, "Scenario #N".
func (r *Registry) Save(result pricing.Result) Scenario {
	r.mu.Lock()
	defer r.mu.Unlock()

	scenario := Scenario{
		ID:     uuid.NewString(),
		Name:   fmt.Sprintf("Scenario #%d", len(r.scenarios)+1),
		Result: result,
	}
	r.scenarios = append(r.scenarios, scenario)
	return scenario
}

// Remove deletes the scenario with the given id, preserving the order of the
// rest. Removing an unknown id is a no-op; Remove reports whether anything
// was deleted.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.scenarios {
		if s.ID == id {
			r.scenarios = append(r.scenarios[:i], r.scenarios[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the scenario with the given id, if present.
func (r *Registry) Get(id string) (Scenario, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// List returns the saved scenarios in insertion order as a fresh slice.
func (r *Registry) List() []Scenario {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Scenario, len(r.scenarios))
	copy(out, r.scenarios)
	return out
}

// Len returns the number of saved scenarios.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.scenarios)
}
