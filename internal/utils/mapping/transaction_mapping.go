package mapping

import (
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:               d.ID,
		UserID:           d.UserID,
		SourceAmount:     d.SourceAmount,
		SourceCurrencyID: d.SourceCurrencyID,
		TargetAmount:     d.TargetAmount,
		TargetCurrencyID: d.TargetCurrencyID,
		RecipientAddress: d.RecipientAddress,
		Fee:              d.Fee,
		Status:           string(d.Status),
		TxHash:           d.TxHash,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:               m.ID,
		UserID:           m.UserID,
		SourceAmount:     m.SourceAmount,
		SourceCurrencyID: m.SourceCurrencyID,
		TargetAmount:     m.TargetAmount,
		TargetCurrencyID: m.TargetCurrencyID,
		RecipientAddress: m.RecipientAddress,
		Fee:              m.Fee,
		Status:           domain.TransactionStatus(m.Status),
		TxHash:           m.TxHash,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
