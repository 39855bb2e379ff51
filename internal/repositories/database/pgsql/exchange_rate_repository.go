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

const exchangeRateColumns = `id, source_currency_id, target_currency_id, rate, updated_at`

// PgxExchangeRateRepository implements the ports.ExchangeRateRepositoryFacade interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(&m.ID, &m.SourceCurrencyID, &m.TargetCurrencyID, &m.Rate, &m.UpdatedAt)
	return m, err
}

// FindExchangeRate retrieves the rate for the ordered pair. The inverse pair is never consulted.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, sourceCurrencyID, targetCurrencyID int64) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE source_currency_id = $1 AND target_currency_id = $2;
	`

	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, sourceCurrencyID, targetCurrencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("exchange rate %d -> %d not found", sourceCurrencyID, targetCurrencyID))
		}
		return nil, apperrors.NewStorageError("failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListExchangeRates retrieves all exchange rates.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates ORDER BY source_currency_id, target_currency_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list exchange rates", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan exchange rates", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
