package pricing

import "github.com/gin-gonic/gin"

func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller) {
	pricing := rg.Group("/pricing")
	{
		pricing.POST("/quotes", controller.CreateQuote)          // POST /api/v1/pricing/quotes
		pricing.GET("/current", controller.GetCurrent)           // GET  /api/v1/pricing/current
		pricing.GET("/current/export", controller.ExportCurrent) // GET  /api/v1/pricing/current/export
	}
}
