package scenarios

import (
	"errors"
	"net/http"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/middleware"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// SaveScenario handles POST /scenarios.
func (c *Controller) SaveScenario(ctx *gin.Context) {
	scenario, err := c.service.Save(middleware.SessionID(ctx))
	if err != nil {
		if errors.Is(err, pricing.ErrNoCurrentResult) {
			response.RespondJSON(ctx, "error", http.StatusConflict, "No pricing result to save", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to save scenario", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Scenario saved successfully", scenario, nil)
}

// GetScenarios handles GET /scenarios.
func (c *Controller) GetScenarios(ctx *gin.Context) {
	list := c.service.List(middleware.SessionID(ctx))
	response.RespondJSON(ctx, "success", http.StatusOK, "Scenarios retrieved successfully", ScenarioListResponse{
		Scenarios: list,
		Count:     len(list),
	}, nil)
}

// RemoveScenario handles DELETE /scenarios/:id. Removal is idempotent, so an
// unknown id still answers 204.
func (c *Controller) RemoveScenario(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Scenario ID is required", nil, nil)
		return
	}

	c.service.Remove(middleware.SessionID(ctx), id)
	ctx.Status(http.StatusNoContent)
}

// ExportScenario handles GET /scenarios/:id/export.
func (c *Controller) ExportScenario(ctx *gin.Context) {
	id := ctx.Param("id")
	text, ok := c.service.Export(middleware.SessionID(ctx), id)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Scenario not found", nil, nil)
		return
	}

	ctx.String(http.StatusOK, "%s", text)
}
