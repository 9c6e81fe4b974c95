package venue

import "github.com/gin-gonic/gin"

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	venues := rg.Group("/venue")
	{
		venues.GET("", controller.GetCatalog) // GET /api/v1/venue
	}
}
