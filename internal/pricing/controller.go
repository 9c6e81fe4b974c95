package pricing

import (
	"errors"
	"net/http"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/middleware"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// oracleFailureMessage is the single user-visible message for every oracle,
// decoding, or rule failure; the distinctions only matter in the logs.
const oracleFailureMessage = "Failed to calculate prices. The AI model may be temporarily unavailable or the request was invalid."

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateQuote handles POST /pricing/quotes.
func (c *Controller) CreateQuote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	result, err := c.service.Quote(ctx.Request.Context(), middleware.SessionID(ctx), req.TargetGross, req.PremiumShare)
	if err != nil {
		c.respondQuoteError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Prices calculated successfully", result, nil)
}

func (c *Controller) respondQuoteError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuoteInFlight):
		response.RespondJSON(ctx, "error", http.StatusConflict, "A price calculation is already in progress for this session", nil, nil)
	case errors.Is(err, ErrOracleUnavailable):
		response.RespondJSON(ctx, "error", http.StatusBadGateway, oracleFailureMessage, nil, nil)
	default:
		var missing *MissingTierError
		var malformed *MalformedInputError
		var violation *RuleViolationError
		if errors.As(err, &missing) || errors.As(err, &malformed) || errors.As(err, &violation) {
			// Broken oracle output is indistinguishable from an unavailable
			// oracle as far as the user is concerned.
			response.RespondJSON(ctx, "error", http.StatusBadGateway, oracleFailureMessage, nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to calculate prices", nil, err.Error())
	}
}

// GetCurrent handles GET /pricing/current.
func (c *Controller) GetCurrent(ctx *gin.Context) {
	result, err := c.service.Current(middleware.SessionID(ctx))
	if err != nil {
		if errors.Is(err, ErrNoCurrentResult) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "No pricing result yet", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get pricing result", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing result retrieved successfully", result, nil)
}

// ExportCurrent handles GET /pricing/current/export and returns the
// tab-separated plain-text rendering of the current result.
func (c *Controller) ExportCurrent(ctx *gin.Context) {
	text, err := c.service.ExportCurrent(middleware.SessionID(ctx))
	if err != nil {
		if errors.Is(err, ErrNoCurrentResult) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "No pricing result yet", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to export pricing result", nil, err.Error())
		return
	}

	ctx.String(http.StatusOK, "%s", text)
}
