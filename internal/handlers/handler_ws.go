package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/parachain_remit/internal/adapters/realtime"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerRealtimeRoutes(rg *gin.RouterGroup, hub *realtime.Hub) {
	if hub == nil {
		return
	}
	rg.GET("/ws/transactions", func(c *gin.Context) { serveTransactionStream(c, hub) })
}

// serveTransactionStream godoc
// @Summary Stream settlement outcomes
// @Description Upgrades to a WebSocket that receives one message per resolved transaction. Authenticated clients, or clients passing userId, only receive that user's transactions.
// @Tags transactions
// @Param   userId query int false "Only stream this user's transactions"
// @Success 101
// @Failure 400 {object} ErrorResponse "Invalid userId"
// @Router /ws/transactions [get]
func serveTransactionStream(c *gin.Context, hub *realtime.Hub) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter *int64
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		filter = &userID
	} else if raw := c.Query("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid userId: must be a positive integer"})
			return
		}
		filter = &userID
	}

	// The upgrader has already answered the request when this fails.
	if err := hub.ServeWS(c.Writer, c.Request, filter); err != nil {
		logger.Warn("WebSocket connection rejected", slog.String("error", err.Error()))
	}
}
