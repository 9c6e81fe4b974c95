package scenarios

import (
	"log/slog"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/pkg/logger"
)

// SessionState is the slice of a session this service touches.
type SessionState interface {
	Current() *pricing.Result
	Scenarios() *Registry
}

// SessionProvider resolves a session id to its state.
type SessionProvider interface {
	Session(id string) SessionState
}

// SessionProviderFunc adapts a function to the SessionProvider interface.
type SessionProviderFunc func(id string) SessionState

func (f SessionProviderFunc) Session(id string) SessionState { return f(id) }

type Service interface {
	// Save snapshots the session's current pricing result as a new scenario.
	// Saving with no current result returns pricing.ErrNoCurrentResult and
	// leaves the registry untouched.
	Save(sessionID string) (*Scenario, error)
	List(sessionID string) []Scenario
	// Remove deletes a saved scenario; removing an unknown id is a no-op.
	Remove(sessionID, id string)
	// Export renders a saved scenario as tab-separated text.
	Export(sessionID, id string) (string, bool)
}

type service struct {
	sessions SessionProvider
	log      *logger.Logger
}

func NewService(sessions SessionProvider, log *logger.Logger) Service {
	return &service{
		sessions: sessions,
		log:      log,
	}
}

func (s *service) Save(sessionID string) (*Scenario, error) {
	sess := s.sessions.Session(sessionID)
	current := sess.Current()
	if current == nil {
		return nil, pricing.ErrNoCurrentResult
	}

	scenario := sess.Scenarios().Save(*current)
	s.log.Info("scenario saved",
		slog.String("session_id", sessionID),
		slog.String("scenario_id", scenario.ID),
		slog.String("name", scenario.Name),
	)
	return &scenario, nil
}

func (s *service) List(sessionID string) []Scenario {
	return s.sessions.Session(sessionID).Scenarios().List()
}

func (s *service) Remove(sessionID, id string) {
	if s.sessions.Session(sessionID).Scenarios().Remove(id) {
		s.log.Info("scenario removed",
			slog.String("session_id", sessionID),
			slog.String("scenario_id", id),
		)
	}
}

func (s *service) Export(sessionID, id string) (string, bool) {
	scenario, ok := s.sessions.Session(sessionID).Scenarios().Get(id)
	if !ok {
		return "", false
	}
	return pricing.Text(&scenario.Result), true
}
