package scenarios

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Save(sessionID string) (*Scenario, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Scenario), args.Error(1)
}

func (m *MockService) List(sessionID string) []Scenario {
	args := m.Called(sessionID)
	return args.Get(0).([]Scenario)
}

func (m *MockService) Remove(sessionID, id string) {
	m.Called(sessionID, id)
}

func (m *MockService) Export(sessionID, id string) (string, bool) {
	args := m.Called(sessionID, id)
	return args.String(0), args.Bool(1)
}

func setupTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(middleware.SessionScope())
	SetupScenarioRoutes(group, NewController(svc))
	return router
}

func TestSaveScenario(t *testing.T) {
	t.Run("answers 201 with the saved scenario", func(t *testing.T) {
		scenario := &Scenario{ID: "abc", Name: "Scenario #1", Result: resultWithTarget(250000)}
		svc := new(MockService)
		svc.On("Save", "default").Return(scenario, nil)
		router := setupTestRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/scenarios", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"Scenario #1"`)
		svc.AssertExpectations(t)
	})

	t.Run("answers 409 with no current result", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Save", "default").Return(nil, pricing.ErrNoCurrentResult)
		router := setupTestRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/scenarios", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetScenarios(t *testing.T) {
	t.Run("returns the list with its count", func(t *testing.T) {
		list := []Scenario{
			{ID: "a", Name: "Scenario #1", Result: resultWithTarget(100000)},
			{ID: "b", Name: "Scenario #2", Result: resultWithTarget(200000)},
		}
		svc := new(MockService)
		svc.On("List", "default").Return(list)
		router := setupTestRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":2`)
	})

	t.Run("scopes the list to the session header", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", "tab-7").Return([]Scenario{})
		router := setupTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
		req.Header.Set("X-Session-ID", "tab-7")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestRemoveScenario(t *testing.T) {
	t.Run("answers 204 whether or not the id existed", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Remove", "default", "abc").Return()
		router := setupTestRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/scenarios/abc", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		svc.AssertExpectations(t)
	})
}

func TestExportScenario(t *testing.T) {
	t.Run("returns the text rendering", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Export", "default", "abc").Return("Pricing Scenario\n", true)
		router := setupTestRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/scenarios/abc/export", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Pricing Scenario\n", w.Body.String())
	})

	t.Run("answers 404 for unknown ids", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Export", "default", "missing").Return("", false)
		router := setupTestRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/scenarios/missing/export", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
