// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/scenarios"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/sessions"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/config"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/middleware"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/venue"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	store  *sessions.Store
	oracle pricing.Oracle
	log    *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, store *sessions.Store, oracle pricing.Oracle, log *logger.Logger) *Router {
	return &Router{
		config: cfg,
		store:  store,
		oracle: oracle,
		log:    log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	var rules pricing.RuleSet
	if r.config.Pricing.EnforceRules {
		rules = pricing.StrictRules{}
	}

	// The session store exposes concrete sessions; each domain service only
	// sees the slice of session state it declares.
	pricingService := pricing.NewService(r.oracle,
		pricing.SessionProviderFunc(func(id string) pricing.SessionState {
			return r.store.Session(id)
		}), rules, r.log)
	scenarioService := scenarios.NewService(
		scenarios.SessionProviderFunc(func(id string) scenarios.SessionState {
			return r.store.Session(id)
		}), r.log)

	api := engine.Group(r.config.GetAPIBasePath())
	api.Use(middleware.SessionScope())
	{
		venue.SetupVenueRoutes(api, venue.NewController())
		pricing.SetupPricingRoutes(api, pricing.NewController(pricingService))
		scenarios.SetupScenarioRoutes(api, scenarios.NewController(scenarioService))
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "healthy",
			"timestamp":     time.Now(),
			"service":       "concert-pricing-scaler",
			"live_sessions": r.store.Len(),
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
