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

const (
	poolColumns     = `id, source_currency_id, target_currency_id, total_liquidity, daily_volume, apy`
	positionColumns = `id, user_id, pool_id, amount, created_at`
)

type PgxLiquidityRepository struct {
	BaseRepository
}

func newPgxLiquidityRepository(pool *pgxpool.Pool) portsrepo.LiquidityRepositoryFacade {
	return &PgxLiquidityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LiquidityRepositoryFacade = (*PgxLiquidityRepository)(nil)

func scanPool(row pgx.Row) (models.LiquidityPool, error) {
	var m models.LiquidityPool
	err := row.Scan(&m.ID, &m.SourceCurrencyID, &m.TargetCurrencyID, &m.TotalLiquidity, &m.DailyVolume, &m.APY)
	return m, err
}

func scanPosition(row pgx.Row) (models.LiquidityPosition, error) {
	var m models.LiquidityPosition
	err := row.Scan(&m.ID, &m.UserID, &m.PoolID, &m.Amount, &m.CreatedAt)
	return m, err
}

// ListPools retrieves all pools.
func (r *PgxLiquidityRepository) ListPools(ctx context.Context) ([]domain.LiquidityPool, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+poolColumns+` FROM liquidity_pools ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query liquidity pools", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LiquidityPool, error) {
		return scanPool(row)
	})
	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan liquidity pools", err)
	}
	return mapping.ToDomainLiquidityPoolSlice(ms), nil
}

// FindPoolByID retrieves a pool by its ID.
func (r *PgxLiquidityRepository) FindPoolByID(ctx context.Context, id int64) (*domain.LiquidityPool, error) {
	m, err := scanPool(r.Pool.QueryRow(ctx, `SELECT `+poolColumns+` FROM liquidity_pools WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("liquidity pool %d not found", id))
		}
		return nil, apperrors.NewStorageError("failed to find liquidity pool", err)
	}
	d := mapping.ToDomainLiquidityPool(m)
	return &d, nil
}

// ListPositionsByUser retrieves a user's positions in creation order.
func (r *PgxLiquidityRepository) ListPositionsByUser(ctx context.Context, userID int64) ([]domain.LiquidityPosition, error) {
	query := `SELECT ` + positionColumns + ` FROM liquidity_positions WHERE user_id = $1 ORDER BY created_at, id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query liquidity positions", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LiquidityPosition, error) {
		return scanPosition(row)
	})
	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan liquidity positions", err)
	}
	return mapping.ToDomainLiquidityPositionSlice(ms), nil
}

// ContributeToPool increments the pool total and records the position in one
// database transaction. The increment is done in SQL so concurrent
// contributions never lose an update.
func (r *PgxLiquidityRepository) ContributeToPool(ctx context.Context, position domain.LiquidityPosition) (*domain.LiquidityPosition, *domain.LiquidityPool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	pm, err := scanPool(tx.QueryRow(ctx, `
		UPDATE liquidity_pools SET total_liquidity = total_liquidity + $2
		WHERE id = $1
		RETURNING `+poolColumns+`;`,
		position.PoolID, position.Amount,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("liquidity pool %d not found", position.PoolID))
		}
		if isNumericOverflow(err) {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest,
				fmt.Sprintf("liquidity pool %d total would exceed %d integer digits", position.PoolID, domain.AmountIntegerDigits), err)
		}
		return nil, nil, apperrors.NewStorageError("failed to update liquidity pool", err)
	}

	m := mapping.ToModelLiquidityPosition(position)
	created, err := scanPosition(tx.QueryRow(ctx, `
		INSERT INTO liquidity_positions (user_id, pool_id, amount)
		VALUES ($1, $2, $3)
		RETURNING `+positionColumns+`;`,
		m.UserID, m.PoolID, m.Amount,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, nil, apperrors.NewAppError(http.StatusNotFound, fmt.Sprintf("user %d not found", position.UserID), err)
		}
		return nil, nil, apperrors.NewStorageError("failed to insert liquidity position", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	dPos := mapping.ToDomainLiquidityPosition(created)
	dPool := mapping.ToDomainLiquidityPool(pm)
	return &dPos, &dPool, nil
}
