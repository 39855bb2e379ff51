package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	"github.com/SscSPs/parachain_remit/internal/models"
	"github.com/SscSPs/parachain_remit/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `id, code, name, symbol, parachain_name, parachain_id`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(&m.ID, &m.Code, &m.Name, &m.Symbol, &m.ParachainName, &m.ParachainID)
	return m, err
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE id = $1;`
	return r.findOne(ctx, query, id, fmt.Sprintf("id %d", id))
}

// FindCurrencyByCode retrieves a currency by its code. Codes are stored upper-case.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1;`
	return r.findOne(ctx, query, code, "code "+code)
}

func (r *PgxCurrencyRepository) findOne(ctx context.Context, query string, arg any, label string) (*domain.Currency, error) {
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency with " + label + " not found")
		}
		return nil, apperrors.NewStorageError("failed to find currency by "+label, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query currencies", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan currencies", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
