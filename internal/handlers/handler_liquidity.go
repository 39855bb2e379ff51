package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/dto"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// liquidityHandler handles HTTP requests for pools and positions.
type liquidityHandler struct {
	liquidityService portssvc.LiquiditySvcFacade
}

func registerLiquidityRoutes(rg *gin.RouterGroup, liquidityService portssvc.LiquiditySvcFacade) {
	h := &liquidityHandler{liquidityService: liquidityService}

	pools := rg.Group("/liquidity-pools")
	{
		pools.GET("", h.listPools)
		pools.GET("/:id", h.getPool)
	}

	positions := rg.Group("/liquidity-positions")
	{
		positions.POST("", h.createPosition)
		positions.GET("/user/:userId", h.listPositionsByUser)
	}
}

// listPools godoc
// @Summary List liquidity pools
// @Description Retrieves every pool with its corridor currencies.
// @Tags liquidity
// @Produce  json
// @Success 200 {array} dto.LiquidityPoolResponse
// @Failure 500 {object} ErrorResponse "Failed to list liquidity pools"
// @Router /liquidity-pools [get]
func (h *liquidityHandler) listPools(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pools, err := h.liquidityService.ListPools(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list liquidity pools")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLiquidityPoolResponse(pools))
}

// getPool godoc
// @Summary Get a liquidity pool
// @Tags liquidity
// @Produce  json
// @Param   id path int true "Pool ID"
// @Success 200 {object} dto.LiquidityPoolResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Pool not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve liquidity pool"
// @Router /liquidity-pools/{id} [get]
func (h *liquidityHandler) getPool(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := int64Param(c, logger, "id")
	if !ok {
		return
	}

	pool, err := h.liquidityService.GetPool(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve liquidity pool")
		return
	}
	c.JSON(http.StatusOK, dto.ToPoolWithCurrenciesResponse(pool))
}

// createPosition godoc
// @Summary Contribute liquidity
// @Description Records a position in an existing pool and adds its amount to the pool's total liquidity. With a bearer token the position belongs to the token's user; a different userId in the body is rejected.
// @Tags liquidity
// @Accept  json
// @Produce  json
// @Param   position body dto.CreateLiquidityPositionRequest true "Contribution"
// @Success 201 {object} dto.LiquidityPositionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid token"
// @Failure 403 {object} ErrorResponse "userId does not match the token"
// @Failure 404 {object} ErrorResponse "Pool or user not found"
// @Failure 500 {object} ErrorResponse "Failed to record liquidity position"
// @Security BearerAuth
// @Router /liquidity-positions [post]
func (h *liquidityHandler) createPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLiquidityPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := requestUserID(c, logger, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	position, err := h.liquidityService.Contribute(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record liquidity position")
		return
	}

	logger.Info("Liquidity position recorded", slog.Int64("position_id", position.ID), slog.Int64("pool_id", position.PoolID))
	c.JSON(http.StatusCreated, dto.ToLiquidityPositionResponse(position))
}

// listPositionsByUser godoc
// @Summary List a user's liquidity positions
// @Tags liquidity
// @Produce  json
// @Param   userId path int true "User ID"
// @Success 200 {array} dto.LiquidityPositionResponse
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 500 {object} ErrorResponse "Failed to list liquidity positions"
// @Router /liquidity-positions/user/{userId} [get]
func (h *liquidityHandler) listPositionsByUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := int64Param(c, logger, "userId")
	if !ok {
		return
	}

	positions, err := h.liquidityService.ListPositionsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list liquidity positions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLiquidityPositionResponse(positions))
}
