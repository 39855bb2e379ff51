package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/dto"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/gin-gonic/gin"
)

type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := &quoteHandler{quoteService: quoteService}
	rg.POST("/calculate", h.calculate)
}

// calculate godoc
// @Summary Quote a transfer
// @Description Prices a prospective transfer: a flat 1% fee is taken from the source amount and the remainder converted at the current rate. Nothing is persisted.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.CalculateRequest true "Amount and currency pair"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Currency or exchange rate not found"
// @Failure 500 {object} ErrorResponse "Failed to calculate quote"
// @Router /calculate [post]
func (h *quoteHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	quote, err := h.quoteService.Calculate(c.Request.Context(), req.SourceAmount, req.SourceCurrencyCode, req.TargetCurrencyCode)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate quote")
		return
	}

	logger.Info("Quote calculated",
		slog.String("source", quote.SourceCurrency.Code),
		slog.String("target", quote.TargetCurrency.Code),
		slog.String("converted_amount", quote.ConvertedAmount.String()))
	c.JSON(http.StatusOK, dto.ToCalculateResponse(quote))
}
