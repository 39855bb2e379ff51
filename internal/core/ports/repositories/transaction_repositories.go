package repositories

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
)

// TransactionReader defines read operations for remittance transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by ID.
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, oldest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByUser retrieves a user's transactions, oldest first.
	ListTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)

	// ListPendingTransactions retrieves transactions still awaiting resolution.
	ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for remittance transactions
type TransactionWriter interface {
	// CreateTransaction persists a new transaction and returns it with its ID and CreatedAt set.
	CreateTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)

	// ResolveTransaction moves a pending transaction to a terminal state.
	// It returns apperrors.ErrConflict if the transaction is no longer pending.
	ResolveTransaction(ctx context.Context, id int64, res domain.Resolution) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
