package pricing

// TierPrice is one (tier, price) pair as delivered by the pricing oracle.
// Pairs may arrive in any order; matching is always by tier name.
type TierPrice struct {
	Tier  string  `json:"tier"`
	Price float64 `json:"price"`
}

// Tier is a fully priced catalog tier. Built fresh per calculation, never
// mutated afterwards; Subtotal is always SeatCount * Price.
type Tier struct {
	TierName  string  `json:"tier_name"`
	SeatCount int     `json:"seat_count"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// Summary is the aggregate roll-up derived from the target gross and the five
// tier subtotals. Pure function of its inputs.
type Summary struct {
	TargetGross        float64 `json:"target_gross"`
	ActualGross        float64 `json:"actual_gross"`
	DifferenceAmount   float64 `json:"difference_amount"`
	DifferencePercent  float64 `json:"difference_percent"`
	AverageTicketPrice float64 `json:"average_ticket_price"`
	PriceSpread        float64 `json:"price_spread"`
}

// Result is one complete pricing computation. Tiers are always exactly the
// five catalog tiers in fixed P1..P5 order.
type Result struct {
	Tiers   []Tier  `json:"tiers"`
	Summary Summary `json:"summary"`
}
