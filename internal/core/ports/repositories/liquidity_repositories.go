package repositories

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
)

// LiquidityReader defines read operations for pools and positions
type LiquidityReader interface {
	// ListPools retrieves all liquidity pools.
	ListPools(ctx context.Context) ([]domain.LiquidityPool, error)

	// FindPoolByID retrieves a pool by ID.
	FindPoolByID(ctx context.Context, id int64) (*domain.LiquidityPool, error)

	// ListPositionsByUser retrieves every position a user holds, oldest first.
	ListPositionsByUser(ctx context.Context, userID int64) ([]domain.LiquidityPosition, error)
}

// LiquidityWriter defines write operations for pools and positions
type LiquidityWriter interface {
	// ContributeToPool records the position and adds its amount to the pool's
	// total liquidity as one unit. If the pool does not exist nothing is
	// written and apperrors.ErrNotFound is returned.
	ContributeToPool(ctx context.Context, position domain.LiquidityPosition) (*domain.LiquidityPosition, *domain.LiquidityPool, error)
}

// LiquidityRepositoryFacade combines all liquidity-related repository interfaces
type LiquidityRepositoryFacade interface {
	LiquidityReader
	LiquidityWriter
}
