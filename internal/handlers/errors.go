package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps err onto a status code. Client errors echo the error
// text; server errors are logged and replaced by fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}

	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// bindError answers a request whose body or params failed binding.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// int64Param parses a positive int64 path parameter, answering 400 otherwise.
func int64Param(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid path parameter", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + ": must be a positive integer"})
		return 0, false
	}
	return id, true
}

// requestUserID settles whose request this is. Anonymous requests keep the
// body's userId. An authenticated request always acts as the token's user and
// is answered with 403 when the body names someone else.
func requestUserID(c *gin.Context, logger *slog.Logger, bodyUserID *int64) (*int64, bool) {
	tokenUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return bodyUserID, true
	}
	if bodyUserID != nil && *bodyUserID != tokenUserID {
		logger.Warn("Request userId does not match token", slog.Int64("body_user_id", *bodyUserID))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "userId does not match the authenticated user"})
		return nil, false
	}
	return &tokenUserID, true
}
