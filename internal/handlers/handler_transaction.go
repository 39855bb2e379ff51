package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/dto"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to remittances.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to remittances.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("/:id/settle", h.settleTransaction)
		transactions.GET("/user/:userId", h.listTransactionsByUser)
	}
}

// createTransaction godoc
// @Summary Submit a remittance
// @Description Prices the transfer at the current rate and records it as pending. It is resolved to completed or failed shortly afterwards. With a bearer token the transaction belongs to the token's user; a different userId in the body is rejected.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input, unknown currency or no rate for the pair"
// @Failure 401 {object} ErrorResponse "Invalid token"
// @Failure 403 {object} ErrorResponse "userId does not match the token"
// @Failure 500 {object} ErrorResponse "Failed to submit transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := requestUserID(c, logger, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	tx, err := h.transactionService.SubmitTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to submit transaction")
		return
	}

	logger.Info("Transaction accepted", slog.Int64("transaction_id", tx.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := int64Param(c, logger, "id")
	if !ok {
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// settleTransaction godoc
// @Summary Resolve a pending transaction now
// @Description Draws the outcome immediately instead of waiting for the settlement delay. A transaction is only ever resolved once.
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Transaction already resolved"
// @Failure 500 {object} ErrorResponse "Failed to settle transaction"
// @Router /transactions/{id}/settle [post]
func (h *transactionHandler) settleTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := int64Param(c, logger, "id")
	if !ok {
		return
	}

	tx, err := h.transactionService.SettleTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to settle transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves every transaction, oldest first.
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txs, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txs))
}

// listTransactionsByUser godoc
// @Summary List a user's transactions
// @Tags transactions
// @Produce  json
// @Param   userId path int true "User ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Router /transactions/user/{userId} [get]
func (h *transactionHandler) listTransactionsByUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := int64Param(c, logger, "userId")
	if !ok {
		return
	}

	txs, err := h.transactionService.ListTransactionsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txs))
}
