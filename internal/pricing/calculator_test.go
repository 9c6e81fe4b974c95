package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func fivePrices() []TierPrice {
	return []TierPrice{
		{Tier: "P1", Price: 79.95},
		{Tier: "P2", Price: 59.95},
		{Tier: "P3", Price: 49.95},
		{Tier: "P4", Price: 44.95},
		{Tier: "P5", Price: 29.95},
	}
}

func TestCalculate(t *testing.T) {
	t.Run("computes tiers and summary for a full quote", func(t *testing.T) {
		result, err := Calculate(250000, fivePrices())
		require.NoError(t, err)
		require.Len(t, result.Tiers, 5)

		wantSubtotals := []float64{
			119 * 79.95,
			465 * 59.95,
			400 * 49.95,
			430 * 44.95,
			76 * 29.95,
		}
		wantGross := 0.0
		for i, tier := range result.Tiers {
			assert.InDelta(t, wantSubtotals[i], tier.Subtotal, tolerance, "tier %s", tier.TierName)
			wantGross += wantSubtotals[i]
		}

		sum := result.Summary
		assert.InDelta(t, 250000, sum.TargetGross, tolerance)
		assert.InDelta(t, wantGross, sum.ActualGross, tolerance)
		assert.InDelta(t, wantGross-250000, sum.DifferenceAmount, tolerance)
		assert.InDelta(t, (wantGross-250000)/250000*100, sum.DifferencePercent, tolerance)
		assert.InDelta(t, wantGross/1490, sum.AverageTicketPrice, tolerance)
		assert.InDelta(t, 79.95-29.95, sum.PriceSpread, tolerance)
	})

	t.Run("input order never affects output", func(t *testing.T) {
		shuffled := []TierPrice{
			{Tier: "P3", Price: 49.95},
			{Tier: "P1", Price: 79.95},
			{Tier: "P5", Price: 29.95},
			{Tier: "P2", Price: 59.95},
			{Tier: "P4", Price: 44.95},
		}
		fromShuffled, err := Calculate(250000, shuffled)
		require.NoError(t, err)
		fromOrdered, err := Calculate(250000, fivePrices())
		require.NoError(t, err)

		assert.Equal(t, fromOrdered, fromShuffled)
		for i, name := range []string{"P1", "P2", "P3", "P4", "P5"} {
			assert.Equal(t, name, fromShuffled.Tiers[i].TierName)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := Calculate(333333.33, fivePrices())
		require.NoError(t, err)
		second, err := Calculate(333333.33, fivePrices())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing tier fails with no partial result", func(t *testing.T) {
		prices := []TierPrice{
			{Tier: "P1", Price: 79.95},
			{Tier: "P2", Price: 59.95},
			{Tier: "P3", Price: 49.95},
			{Tier: "P5", Price: 29.95},
			{Tier: "VIP", Price: 199.95},
		}
		result, err := Calculate(250000, prices)
		assert.Nil(t, result)
		var missing *MissingTierError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "P4", missing.Tier)
	})

	t.Run("duplicate tier is malformed input", func(t *testing.T) {
		prices := fivePrices()
		prices[4] = TierPrice{Tier: "P1", Price: 19.95}
		result, err := Calculate(250000, prices)
		assert.Nil(t, result)
		var malformed *MalformedInputError
		assert.ErrorAs(t, err, &malformed)
	})

	t.Run("wrong cardinality is malformed input", func(t *testing.T) {
		var malformed *MalformedInputError

		_, err := Calculate(250000, fivePrices()[:4])
		assert.ErrorAs(t, err, &malformed)

		six := append(fivePrices(), TierPrice{Tier: "P6", Price: 9.95})
		_, err = Calculate(250000, six)
		assert.ErrorAs(t, err, &malformed)
	})

	t.Run("non-finite and negative prices are malformed input", func(t *testing.T) {
		var malformed *MalformedInputError
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.05} {
			prices := fivePrices()
			prices[2].Price = bad
			result, err := Calculate(250000, prices)
			assert.Nil(t, result)
			assert.ErrorAs(t, err, &malformed, "price %v", bad)
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		prices := fivePrices()
		prices[4].Price = 0
		result, err := Calculate(250000, prices)
		require.NoError(t, err)
		assert.InDelta(t, 0, result.Tiers[4].Subtotal, tolerance)
	})

	t.Run("non-positive target gross is rejected", func(t *testing.T) {
		var malformed *MalformedInputError
		for _, target := range []float64{0, -1, -250000} {
			result, err := Calculate(target, fivePrices())
			assert.Nil(t, result)
			assert.ErrorAs(t, err, &malformed, "target %v", target)
		}
	})

	t.Run("non-finite target gross is rejected", func(t *testing.T) {
		var malformed *MalformedInputError
		for _, target := range []float64{math.NaN(), math.Inf(1)} {
			_, err := Calculate(target, fivePrices())
			assert.ErrorAs(t, err, &malformed)
		}
	})

	t.Run("spread goes negative when the hierarchy is inverted", func(t *testing.T) {
		prices := []TierPrice{
			{Tier: "P1", Price: 29.95},
			{Tier: "P2", Price: 44.95},
			{Tier: "P3", Price: 49.95},
			{Tier: "P4", Price: 59.95},
			{Tier: "P5", Price: 79.95},
		}
		result, err := Calculate(250000, prices)
		require.NoError(t, err)
		assert.InDelta(t, 29.95-79.95, result.Summary.PriceSpread, tolerance)
	})
}
