package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrOracleUnavailable wraps every transport or decoding failure of the
	// external pricing oracle. Callers surface it as a single generic
	// "failed to calculate prices" condition and never retry automatically.
	ErrOracleUnavailable = errors.New("pricing oracle unavailable")

	// ErrQuoteInFlight is returned when a session already has an outstanding
	// oracle call. At most one quote may be in flight per session.
	ErrQuoteInFlight = errors.New("a price calculation is already in progress")

	// ErrNoCurrentResult is returned when a session has no pricing result yet.
	ErrNoCurrentResult = errors.New("no current pricing result")
)

// MissingTierError reports a catalog tier with no matching supplied price.
type MissingTierError struct {
	Tier string
}

func (e *MissingTierError) Error() string {
	return fmt.Sprintf("missing price for tier %s", e.Tier)
}

// MalformedInputError reports calculator input that violates the five-tier
// contract: wrong cardinality, duplicate tiers, or a price that is not a
// finite non-negative number.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed pricing input: %s", e.Reason)
}

// RuleViolationError reports oracle prices that failed the advisory business
// rules when rule enforcement is enabled.
type RuleViolationError struct {
	Violations []string
}

func (e *RuleViolationError) Error() string {
	if len(e.Violations) == 1 {
		return "pricing rule violation: " + e.Violations[0]
	}
	return fmt.Sprintf("pricing rule violations (%d): %s", len(e.Violations), e.Violations[0])
}
