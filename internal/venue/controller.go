package venue

import (
	"net/http"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

// GetCatalog returns the fixed seating catalog.
func (c *Controller) GetCatalog(ctx *gin.Context) {
	tiers := make([]TierInfo, 0, TierCount())
	for _, tier := range TierOrder() {
		count, err := SeatCount(tier)
		if err != nil {
			// Unreachable with the closed tier domain; loud on purpose.
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Venue catalog is misconfigured", nil, err.Error())
			return
		}
		tiers = append(tiers, TierInfo{TierName: tier, SeatCount: count})
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue catalog retrieved successfully", CatalogResponse{
		Tiers:      tiers,
		TotalSeats: TotalSeats(),
	}, nil)
}
