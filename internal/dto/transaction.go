package dto

import (
	"time"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to submit a remittance.
// Fee, target amount and status are computed server-side.
type CreateTransactionRequest struct {
	UserID           *int64          `json:"userId" binding:"omitempty,gt=0"`
	SourceAmount     decimal.Decimal `json:"sourceAmount" binding:"required,gt=0"`
	SourceCurrencyID int64           `json:"sourceCurrencyId" binding:"required,gt=0"`
	TargetCurrencyID int64           `json:"targetCurrencyId" binding:"required,gt=0"`
	RecipientAddress string          `json:"recipientAddress" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID               int64           `json:"id"`
	UserID           *int64          `json:"userId"`
	SourceAmount     decimal.Decimal `json:"sourceAmount"`
	SourceCurrencyID int64           `json:"sourceCurrencyId"`
	TargetAmount     decimal.Decimal `json:"targetAmount"`
	TargetCurrencyID int64           `json:"targetCurrencyId"`
	RecipientAddress string          `json:"recipientAddress"`
	Fee              decimal.Decimal `json:"fee"`
	Status           string          `json:"status"`
	TxHash           *string         `json:"txHash,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               tx.ID,
		UserID:           tx.UserID,
		SourceAmount:     tx.SourceAmount,
		SourceCurrencyID: tx.SourceCurrencyID,
		TargetAmount:     tx.TargetAmount,
		TargetCurrencyID: tx.TargetCurrencyID,
		RecipientAddress: tx.RecipientAddress,
		Fee:              tx.Fee,
		Status:           string(tx.Status),
		TxHash:           tx.TxHash,
		CreatedAt:        tx.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i := range txs {
		res[i] = ToTransactionResponse(&txs[i])
	}
	return res
}
