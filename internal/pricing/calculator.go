package pricing

import (
	"fmt"
	"math"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/venue"
)

// Calculate turns a target gross amount plus five (tier, price) pairs into a
// complete pricing result. Input pairs may be in any order; the output tiers
// are always the five catalog tiers in fixed P1..P5 order.
//
// targetGross must be a finite positive amount: a zero target makes the
// percentage difference undefined, so it is rejected here rather than letting
// NaN leak into stored results. Prices must be finite and non-negative, and
// every catalog tier must be covered exactly once.
//
// The advisory business rules (descending prices, $5 increments, .95 endings,
// the $20 P1-P2 spread, the $19.95 floor) are instructions given to the
// oracle, not invariants of this function; see RuleSet for optional
// enforcement.
func Calculate(targetGross float64, prices []TierPrice) (*Result, error) {
	if math.IsNaN(targetGross) || math.IsInf(targetGross, 0) {
		return nil, &MalformedInputError{Reason: "target gross is not a finite number"}
	}
	if targetGross <= 0 {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("target gross must be positive, got %v", targetGross)}
	}

	byTier := make(map[string]float64, len(prices))
	for _, p := range prices {
		if _, dup := byTier[p.Tier]; dup {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("duplicate price for tier %s", p.Tier)}
		}
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("price for tier %s is not a finite number", p.Tier)}
		}
		if p.Price < 0 {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("price for tier %s is negative", p.Tier)}
		}
		byTier[p.Tier] = p.Price
	}
	if len(byTier) != venue.TierCount() {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("expected %d distinct tier prices, got %d", venue.TierCount(), len(byTier))}
	}

	tiers := make([]Tier, 0, venue.TierCount())
	actualGross := 0.0
	for _, name := range venue.TierOrder() {
		price, ok := byTier[name]
		if !ok {
			return nil, &MissingTierError{Tier: name}
		}
		seats, err := venue.SeatCount(name)
		if err != nil {
			// Unreachable: TierOrder only yields catalog tiers.
			return nil, err
		}
		subtotal := float64(seats) * price
		tiers = append(tiers, Tier{
			TierName:  name,
			SeatCount: seats,
			Price:     price,
			Subtotal:  subtotal,
		})
		actualGross += subtotal
	}

	differenceAmount := actualGross - targetGross
	return &Result{
		Tiers: tiers,
		Summary: Summary{
			TargetGross:        targetGross,
			ActualGross:        actualGross,
			DifferenceAmount:   differenceAmount,
			DifferencePercent:  differenceAmount / targetGross * 100,
			AverageTicketPrice: actualGross / float64(venue.TotalSeats()),
			// Spread is by fixed tier position, first minus last. If the
			// oracle inverts the expected ordering this goes negative.
			PriceSpread: tiers[0].Price - tiers[len(tiers)-1].Price,
		},
	}, nil
}
