package services

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/dto"
)

// TransactionReaderSvc defines read operations for remittances
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for remittances
type TransactionWriterSvc interface {
	// SubmitTransaction validates and persists a pending transaction and
	// schedules its resolution.
	SubmitTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// SettleTransaction resolves a pending transaction now rather than after its delay.
	SettleTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
