package venue

import "fmt"

// The five pricing tiers of the house, highest priced first. Every pricing
// computation walks tiers in this order regardless of how prices arrive.
const (
	TierP1 = "P1"
	TierP2 = "P2"
	TierP3 = "P3"
	TierP4 = "P4"
	TierP5 = "P5"
)

// seatCounts is the fixed seating manifest. It is set once here and never
// mutated; all callers get read-only views.
var seatCounts = map[string]int{
	TierP1: 119,
	TierP2: 465,
	TierP3: 400,
	TierP4: 430,
	TierP5: 76,
}

var tierOrder = []string{TierP1, TierP2, TierP3, TierP4, TierP5}

var totalSeats int

func init() {
	for _, count := range seatCounts {
		totalSeats += count
	}
}

// ConfigurationError reports a lookup against a tier name that is not part of
// the fixed catalog. The tier domain is closed, so hitting this means a logic
// defect in the caller, not bad user input.
type ConfigurationError struct {
	Tier string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown pricing tier %q", e.Tier)
}

// SeatCount returns the configured seat count for a catalog tier.
func SeatCount(tier string) (int, error) {
	count, ok := seatCounts[tier]
	if !ok {
		return 0, &ConfigurationError{Tier: tier}
	}
	return count, nil
}

// IsTier reports whether name is one of the five catalog tiers.
func IsTier(name string) bool {
	_, ok := seatCounts[name]
	return ok
}

// TotalSeats returns the total sellable seat count across all tiers.
func TotalSeats() int {
	return totalSeats
}

// TierOrder returns the display/calculation order P1..P5 as a fresh slice.
func TierOrder() []string {
	out := make([]string, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// TierCount returns the number of catalog tiers.
func TierCount() int {
	return len(tierOrder)
}
