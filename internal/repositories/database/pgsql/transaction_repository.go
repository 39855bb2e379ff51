package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	"github.com/SscSPs/parachain_remit/internal/models"
	"github.com/SscSPs/parachain_remit/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, user_id, source_amount, source_currency_id, target_amount, target_currency_id,
	recipient_address, fee, status, tx_hash, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID, &m.UserID, &m.SourceAmount, &m.SourceCurrencyID, &m.TargetAmount, &m.TargetCurrencyID,
		&m.RecipientAddress, &m.Fee, &m.Status, &m.TxHash, &m.CreatedAt,
	)
	return m, err
}

// CreateTransaction inserts a new transaction. ID and CreatedAt are assigned by the database.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(tx)
	query := `
		INSERT INTO transactions (user_id, source_amount, source_currency_id, target_amount, target_currency_id,
			recipient_address, fee, status, tx_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + transactionColumns + `;
	`

	created, err := scanTransaction(r.Pool.QueryRow(ctx, query,
		m.UserID, m.SourceAmount, m.SourceCurrencyID, m.TargetAmount, m.TargetCurrencyID,
		m.RecipientAddress, m.Fee, m.Status, m.TxHash,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "transaction references an unknown user or currency", err)
		}
		if isNumericOverflow(err) {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "transaction amount exceeds the stored precision", err)
		}
		return nil, apperrors.NewStorageError("failed to insert transaction", err)
	}

	d := mapping.ToDomainTransaction(created)
	return &d, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d not found", id))
		}
		return nil, apperrors.NewStorageError("failed to find transaction", err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves all transactions in creation order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY created_at, id;`)
}

// ListTransactionsByUser retrieves a user's transactions in creation order.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY created_at, id;`, userID)
}

// ListPendingTransactions retrieves transactions that have not been resolved yet.
func (r *PgxTransactionRepository) ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE status = $1 ORDER BY created_at, id;`,
		string(domain.StatusPending))
}

func (r *PgxTransactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query transactions", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan transactions", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// ResolveTransaction applies a terminal status. The update is conditional on the
// row still being pending, so concurrent resolvers cannot both succeed.
func (r *PgxTransactionRepository) ResolveTransaction(ctx context.Context, id int64, res domain.Resolution) (*domain.Transaction, error) {
	if err := res.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	query := `
		UPDATE transactions SET status = $2, tx_hash = $3
		WHERE id = $1 AND status = $4
		RETURNING ` + transactionColumns + `;
	`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, id, string(res.Status), res.TxHash, string(domain.StatusPending)))
	if err == nil {
		d := mapping.ToDomainTransaction(m)
		return &d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewStorageError("failed to resolve transaction", err)
	}

	// Either the row is gone or it was already resolved.
	current, findErr := r.FindTransactionByID(ctx, id)
	if findErr != nil {
		return nil, findErr
	}
	return nil, apperrors.NewAppError(http.StatusConflict,
		fmt.Sprintf("transaction %d is already %s", id, current.Status), apperrors.ErrConflict)
}
