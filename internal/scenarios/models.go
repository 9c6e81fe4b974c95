package scenarios

import (
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"
)

// Scenario is a named, saved snapshot of one pricing result, retained for
// comparison within a session. The embedded result is a copy; later quotes
// never mutate a saved scenario.
type Scenario struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	pricing.Result
}
