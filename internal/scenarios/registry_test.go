package scenarios

import (
	"fmt"
	"testing"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultWithTarget(target float64) pricing.Result {
	prices := []pricing.TierPrice{
		{Tier: "P1", Price: 79.95},
		{Tier: "P2", Price: 59.95},
		{Tier: "P3", Price: 49.95},
		{Tier: "P4", Price: 44.95},
		{Tier: "P5", Price: 29.95},
	}
	result, err := pricing.Calculate(target, prices)
	if err != nil {
		panic(fmt.Sprintf("building fixture: %v", err))
	}
	return *result
}

func TestRegistrySave(t *testing.T) {
	t.Run("assigns sequential display names", func(t *testing.T) {
		r := NewRegistry()
		first := r.Save(resultWithTarget(100000))
		second := r.Save(resultWithTarget(200000))

		assert.Equal(t, "Scenario #1", first.Name)
		assert.Equal(t, "Scenario #2", second.Name)
	})

	t.Run("assigns unique ids", func(t *testing.T) {
		r := NewRegistry()
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			s := r.Save(resultWithTarget(100000))
			require.NotEmpty(t, s.ID)
			require.False(t, seen[s.ID], "id %s repeated", s.ID)
			seen[s.ID] = true
		}
	})

	t.Run("snapshots the result by value", func(t *testing.T) {
		r := NewRegistry()
		result := resultWithTarget(100000)
		saved := r.Save(result)

		result.Summary.TargetGross = 999999
		got, ok := r.Get(saved.ID)
		require.True(t, ok)
		assert.InDelta(t, 100000, got.Summary.TargetGross, 1e-9)
	})
}

func TestRegistryRemove(t *testing.T) {
	t.Run("preserves the order of the remaining scenarios", func(t *testing.T) {
		r := NewRegistry()
		a := r.Save(resultWithTarget(100000))
		b := r.Save(resultWithTarget(200000))
		c := r.Save(resultWithTarget(300000))

		assert.True(t, r.Remove(b.ID))

		list := r.List()
		require.Len(t, list, 2)
		assert.Equal(t, a.ID, list[0].ID)
		assert.Equal(t, c.ID, list[1].ID)
	})

	t.Run("save then remove restores the prior collection", func(t *testing.T) {
		r := NewRegistry()
		r.Save(resultWithTarget(100000))
		before := r.List()

		added := r.Save(resultWithTarget(200000))
		assert.True(t, r.Remove(added.ID))

		assert.Equal(t, before, r.List())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		r := NewRegistry()
		r.Save(resultWithTarget(100000))

		assert.False(t, r.Remove("nope"))
		assert.Equal(t, 1, r.Len())
	})

	t.Run("second remove of the same id is a no-op", func(t *testing.T) {
		r := NewRegistry()
		s := r.Save(resultWithTarget(100000))

		assert.True(t, r.Remove(s.ID))
		assert.False(t, r.Remove(s.ID))
		assert.Equal(t, 0, r.Len())
	})
}

func TestRegistryList(t *testing.T) {
	t.Run("returns scenarios in insertion order", func(t *testing.T) {
		r := NewRegistry()
		var ids []string
		for i := 0; i < 5; i++ {
			ids = append(ids, r.Save(resultWithTarget(float64(100000*(i+1)))).ID)
		}
		list := r.List()
		require.Len(t, list, 5)
		for i, s := range list {
			assert.Equal(t, ids[i], s.ID)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		r := NewRegistry()
		r.Save(resultWithTarget(100000))
		list := r.List()
		list[0].Name = "mutated"

		fresh := r.List()
		assert.Equal(t, "Scenario #1", fresh[0].Name)
	})
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	s := r.Save(resultWithTarget(100000))

	got, ok := r.Get(s.ID)
	assert.True(t, ok)
	assert.Equal(t, s, got)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}
