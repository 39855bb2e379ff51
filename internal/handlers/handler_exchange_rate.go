package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/dto"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:source/:target", h.getExchangeRate)
	}
}

// getExchangeRate godoc
// @Summary Get the rate for a currency pair
// @Description Retrieves the directional rate from source to target. The inverse pair is never derived.
// @Tags exchange rates
// @Produce  json
// @Param   source path string true "Source currency code"
// @Param   target path string true "Target currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} ErrorResponse "Currency or exchange rate not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve exchange rate"
// @Router /exchange-rates/{source}/{target} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	source, target := c.Param("source"), c.Param("target")
	logger = logger.With(slog.String("source", source), slog.String("target", target))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), source, target)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Retrieves every seeded directional rate.
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} ErrorResponse "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}
