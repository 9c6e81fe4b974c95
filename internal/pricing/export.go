package pricing

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteText renders a pricing result as tab-separated plain text: a header
// block with the target/actual gross and the difference, then one row per
// tier. The layout matches what users paste into a spreadsheet.
func WriteText(w io.Writer, r *Result) error {
	var b strings.Builder
	b.WriteString("Pricing Scenario\n")
	fmt.Fprintf(&b, "Target Gross: %s\n", FormatUSD(r.Summary.TargetGross))
	fmt.Fprintf(&b, "Actual Gross: %s\n", FormatUSD(r.Summary.ActualGross))
	fmt.Fprintf(&b, "Difference: %s (%.2f%%)\n\n", FormatUSD(r.Summary.DifferenceAmount), r.Summary.DifferencePercent)

	b.WriteString("Tier\tSeats\tPrice\tSubtotal\n")
	for _, tier := range r.Tiers {
		fmt.Fprintf(&b, "%s\t%d\t%s\t%s\n", tier.TierName, tier.SeatCount, FormatUSD(tier.Price), FormatUSD(tier.Subtotal))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Text is WriteText into a string.
func Text(r *Result) string {
	var b strings.Builder
	_ = WriteText(&b, r)
	return b.String()
}

// FormatUSD formats a monetary amount as USD with cent precision and
// thousands separators, e.g. -173555.1 -> "-$173,555.10".
func FormatUSD(v float64) string {
	sign := ""
	if math.Signbit(v) {
		sign = "-"
		v = -v
	}
	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

// formatAmount renders a plain amount with thousands separators, dropping the
// fraction when the value is whole (mirrors toLocaleString on the inputs the
// form produces).
func formatAmount(v float64) string {
	cents := int64(math.Round(math.Abs(v) * 100))
	sign := ""
	if math.Signbit(v) {
		sign = "-"
	}
	if cents%100 == 0 {
		return sign + groupThousands(cents/100)
	}
	return fmt.Sprintf("%s%s.%02d", sign, groupThousands(cents/100), cents%100)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
