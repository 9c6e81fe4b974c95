package pricing

import (
	"fmt"
	"strings"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/venue"
)

// BuildPrompt assembles the natural-language pricing brief sent to the
// oracle. The venue manifest is embedded as context; the pricing rules are
// advisory instructions to the model, not locally enforced invariants.
func BuildPrompt(targetGross, premiumShare float64) string {
	var b strings.Builder

	b.WriteString("You are an expert concert promoter specializing in ticket pricing optimization. ")
	b.WriteString("Your task is to calculate ticket prices for a concert venue with 5 pricing tiers to meet specific financial goals.\n\n")

	b.WriteString("**Venue Seating:**\n")
	for _, tier := range venue.TierOrder() {
		seats, _ := venue.SeatCount(tier)
		fmt.Fprintf(&b, "- %s: %d seats\n", tier, seats)
	}
	fmt.Fprintf(&b, "- Total Sellable Seats: %d\n\n", venue.TotalSeats())

	b.WriteString("**Financial Targets:**\n")
	fmt.Fprintf(&b, "- Target Gross Potential: $%s\n", formatAmount(targetGross))
	fmt.Fprintf(&b, "- Premium Revenue Share: %s%% (This is the percentage of the Target Gross Potential that should come from the sum of P1 and P2 revenue).\n\n", formatAmount(premiumShare))

	b.WriteString("**Pricing Rules (MUST be followed strictly):**\n")
	b.WriteString("1. **Price Format:** All ticket prices must end in .95.\n")
	b.WriteString("2. **Price Increments:** Prices must be in increments of $5 (e.g., $24.95, $29.95, $34.95).\n")
	b.WriteString("3. **Minimum Price:** The lowest ticket price (P5) must be at least $19.95.\n")
	b.WriteString("4. **P1-P2 Spread:** The price for P1 must be exactly $20.00 higher than the price for P2.\n")
	b.WriteString("5. **Price Hierarchy:** Prices must be in descending order: P1 > P2 > P3 > P4 > P5. There should be a reasonable price drop between each tier.\n")
	fmt.Fprintf(&b, "6. **Gross Revenue Goal:** The final calculated total gross revenue (sum of seats * price for all tiers) must be as close as possible to the Target Gross Potential of $%s.\n", formatAmount(targetGross))
	fmt.Fprintf(&b, "7. **Premium Share Goal:** The combined revenue from P1 and P2 tiers ((P1 seats * P1 price) + (P2 seats * P2 price)) must be as close as possible to %s%% of the final calculated total gross revenue.\n\n", formatAmount(premiumShare))

	b.WriteString("**Output Format:**\n")
	b.WriteString("Provide your response as a JSON object containing a single key \"tiers\" which is an array of objects. ")
	b.WriteString("Each object in the array should represent a pricing tier and have the following properties:\n")
	b.WriteString("- \"tier\": The tier name (string, e.g., \"P1\").\n")
	b.WriteString("- \"price\": The calculated ticket price (number).\n\n")
	b.WriteString("Do not output anything other than the JSON object.\n")

	return b.String()
}
