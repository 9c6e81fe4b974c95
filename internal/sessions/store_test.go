package sessions

import (
	"testing"
	"time"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSession(t *testing.T) {
	t.Run("creates sessions lazily and returns the same instance", func(t *testing.T) {
		store := NewStore(time.Hour, logger.GetDefault())
		assert.Equal(t, 0, store.Len())

		first := store.Session("tab-1")
		require.NotNil(t, first)
		assert.Equal(t, 1, store.Len())
		assert.Same(t, first, store.Session("tab-1"))
	})

	t.Run("empty id maps to the default session", func(t *testing.T) {
		store := NewStore(time.Hour, logger.GetDefault())
		assert.Same(t, store.Session(""), store.Session(DefaultSessionID))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		store := NewStore(time.Hour, logger.GetDefault())
		a := store.Session("a")
		b := store.Session("b")

		a.SetCurrent(&pricing.Result{})
		assert.NotNil(t, a.Current())
		assert.Nil(t, b.Current())

		a.Scenarios().Save(pricing.Result{})
		assert.Equal(t, 1, a.Scenarios().Len())
		assert.Equal(t, 0, b.Scenarios().Len())
	})
}

func TestSessionQuoteGuard(t *testing.T) {
	store := NewStore(time.Hour, logger.GetDefault())
	sess := store.Session("s")

	assert.True(t, sess.BeginQuote())
	assert.False(t, sess.BeginQuote(), "second quote must wait for the first")

	sess.EndQuote()
	assert.True(t, sess.BeginQuote())
}

func TestStoreSweep(t *testing.T) {
	t.Run("evicts sessions idle past the TTL", func(t *testing.T) {
		store := NewStore(time.Minute, logger.GetDefault())
		stale := store.Session("stale")
		store.Session("fresh")

		stale.mu.Lock()
		stale.lastSeen = time.Now().Add(-2 * time.Minute)
		stale.mu.Unlock()

		assert.Equal(t, 1, store.Sweep())
		assert.Equal(t, 1, store.Len())

		// The evicted id comes back empty on next touch.
		assert.Nil(t, store.Session("stale").Current())
	})

	t.Run("never evicts a session with an outstanding quote", func(t *testing.T) {
		store := NewStore(time.Minute, logger.GetDefault())
		busy := store.Session("busy")
		require.True(t, busy.BeginQuote())

		busy.mu.Lock()
		busy.lastSeen = time.Now().Add(-2 * time.Minute)
		busy.mu.Unlock()

		assert.Equal(t, 0, store.Sweep())
		assert.Same(t, busy, store.Session("busy"))
	})

	t.Run("touching a session resets its idle clock", func(t *testing.T) {
		store := NewStore(time.Minute, logger.GetDefault())
		sess := store.Session("s")

		sess.mu.Lock()
		sess.lastSeen = time.Now().Add(-2 * time.Minute)
		sess.mu.Unlock()

		sess.Current() // any access counts as activity
		assert.Equal(t, 0, store.Sweep())
	})
}
