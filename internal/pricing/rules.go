package pricing

import (
	"fmt"
	"math"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/venue"
)

// RuleSet validates oracle prices against the advisory pricing rules before
// they are accepted. The original system trusted the oracle blindly; the hook
// exists so that trust can be revoked without touching the calculator.
// A nil RuleSet means no enforcement.
type RuleSet interface {
	Validate(prices []TierPrice) error
}

// StrictRules enforces the full instruction set the oracle is prompted with:
// strictly descending prices P1 > P2 > P3 > P4 > P5, every price in $5
// increments ending in .95, an exact $20.00 P1-P2 spread, and a $19.95 floor
// on the lowest tier.
type StrictRules struct{}

const (
	floorCents    = 1995
	p1p2GapCents  = 2000
	incrementStep = 500 // prices sit at 500c steps offset by -5c (.95 endings)
)

func (StrictRules) Validate(prices []TierPrice) error {
	cents := make(map[string]int64, len(prices))
	for _, p := range prices {
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return &RuleViolationError{Violations: []string{fmt.Sprintf("%s price is not a finite number", p.Tier)}}
		}
		cents[p.Tier] = int64(math.Round(p.Price * 100))
	}

	var violations []string
	for _, name := range venue.TierOrder() {
		c, ok := cents[name]
		if !ok {
			violations = append(violations, fmt.Sprintf("no price for tier %s", name))
			continue
		}
		if c%100 != 95 {
			violations = append(violations, fmt.Sprintf("%s price %.2f does not end in .95", name, float64(c)/100))
		} else if (c+5)%incrementStep != 0 {
			violations = append(violations, fmt.Sprintf("%s price %.2f is not a $5 increment", name, float64(c)/100))
		}
	}
	if len(violations) > 0 {
		return &RuleViolationError{Violations: violations}
	}

	order := venue.TierOrder()
	for i := 1; i < len(order); i++ {
		if cents[order[i-1]] <= cents[order[i]] {
			violations = append(violations, fmt.Sprintf("%s price must be strictly above %s", order[i-1], order[i]))
		}
	}
	if gap := cents[venue.TierP1] - cents[venue.TierP2]; gap != p1p2GapCents {
		violations = append(violations, fmt.Sprintf("P1-P2 spread must be exactly $20.00, got $%.2f", float64(gap)/100))
	}
	if cents[venue.TierP5] < floorCents {
		violations = append(violations, fmt.Sprintf("P5 price $%.2f is below the $19.95 floor", float64(cents[venue.TierP5])/100))
	}

	if len(violations) > 0 {
		return &RuleViolationError{Violations: violations}
	}
	return nil
}
