package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/pkg/logger"
)

// SessionState is the slice of a session this service touches: the in-flight
// quote guard and the current pricing result.
type SessionState interface {
	// BeginQuote claims the session's single quote slot. It returns false if
	// another oracle call for this session is still outstanding.
	BeginQuote() bool
	EndQuote()
	SetCurrent(result *Result)
	Current() *Result
}

// SessionProvider resolves a session id to its state, creating the session on
// first use.
type SessionProvider interface {
	Session(id string) SessionState
}

// SessionProviderFunc adapts a function to the SessionProvider interface.
type SessionProviderFunc func(id string) SessionState

func (f SessionProviderFunc) Session(id string) SessionState { return f(id) }

type Service interface {
	// Quote obtains tier prices from the oracle, computes the summary, and
	// stores the result as the session's current result.
	Quote(ctx context.Context, sessionID string, targetGross, premiumShare float64) (*Result, error)
	Current(sessionID string) (*Result, error)
	ExportCurrent(sessionID string) (string, error)
}

type service struct {
	oracle   Oracle
	sessions SessionProvider
	rules    RuleSet // nil disables business-rule enforcement
	log      *logger.Logger
}

func NewService(oracle Oracle, sessions SessionProvider, rules RuleSet, log *logger.Logger) Service {
	return &service{
		oracle:   oracle,
		sessions: sessions,
		rules:    rules,
		log:      log,
	}
}

func (s *service) Quote(ctx context.Context, sessionID string, targetGross, premiumShare float64) (*Result, error) {
	sess := s.sessions.Session(sessionID)
	if !sess.BeginQuote() {
		return nil, ErrQuoteInFlight
	}
	defer sess.EndQuote()

	prices, err := s.oracle.TierPrices(ctx, targetGross, premiumShare)
	if err != nil {
		s.log.Warn("oracle call failed",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	if s.rules != nil {
		if err := s.rules.Validate(prices); err != nil {
			var violation *RuleViolationError
			if errors.As(err, &violation) {
				s.log.Warn("oracle prices rejected by rule set",
					slog.String("session_id", sessionID),
					slog.Any("violations", violation.Violations),
				)
			}
			return nil, err
		}
	}

	result, err := Calculate(targetGross, prices)
	if err != nil {
		return nil, err
	}

	sess.SetCurrent(result)
	s.log.Info("pricing quote computed",
		slog.String("session_id", sessionID),
		slog.Float64("target_gross", targetGross),
		slog.Float64("actual_gross", result.Summary.ActualGross),
		slog.Float64("difference_percent", result.Summary.DifferencePercent),
	)
	return result, nil
}

func (s *service) Current(sessionID string) (*Result, error) {
	result := s.sessions.Session(sessionID).Current()
	if result == nil {
		return nil, ErrNoCurrentResult
	}
	return result, nil
}

func (s *service) ExportCurrent(sessionID string) (string, error) {
	result, err := s.Current(sessionID)
	if err != nil {
		return "", err
	}
	return Text(result), nil
}
