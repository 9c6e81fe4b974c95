package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(250000, 55)

	t.Run("embeds the venue manifest", func(t *testing.T) {
		assert.Contains(t, prompt, "- P1: 119 seats")
		assert.Contains(t, prompt, "- P2: 465 seats")
		assert.Contains(t, prompt, "- P3: 400 seats")
		assert.Contains(t, prompt, "- P4: 430 seats")
		assert.Contains(t, prompt, "- P5: 76 seats")
		assert.Contains(t, prompt, "Total Sellable Seats: 1490")
	})

	t.Run("embeds the financial targets", func(t *testing.T) {
		assert.Contains(t, prompt, "Target Gross Potential: $250,000")
		assert.Contains(t, prompt, "Premium Revenue Share: 55%")
	})

	t.Run("states every pricing rule", func(t *testing.T) {
		assert.Contains(t, prompt, "must end in .95")
		assert.Contains(t, prompt, "increments of $5")
		assert.Contains(t, prompt, "at least $19.95")
		assert.Contains(t, prompt, "exactly $20.00 higher")
		assert.Contains(t, prompt, "P1 > P2 > P3 > P4 > P5")
	})

	t.Run("demands a bare JSON object", func(t *testing.T) {
		assert.Contains(t, prompt, `single key "tiers"`)
		assert.Contains(t, prompt, "Do not output anything other than the JSON object.")
	})

	t.Run("keeps fractional inputs intact", func(t *testing.T) {
		fractional := BuildPrompt(333333.33, 62.5)
		assert.Contains(t, fractional, "$333,333.33")
		assert.Contains(t, fractional, "62.50%")
	})
}
