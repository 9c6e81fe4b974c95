package scenarios

import "github.com/gin-gonic/gin"

func SetupScenarioRoutes(rg *gin.RouterGroup, controller *Controller) {
	scenarios := rg.Group("/scenarios")
	{
		scenarios.POST("", controller.SaveScenario)             // POST   /api/v1/scenarios
		scenarios.GET("", controller.GetScenarios)              // GET    /api/v1/scenarios
		scenarios.DELETE("/:id", controller.RemoveScenario)     // DELETE /api/v1/scenarios/:id
		scenarios.GET("/:id/export", controller.ExportScenario) // GET    /api/v1/scenarios/:id/export
	}
}
