package services

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/dto"
)

// LiquidityReaderSvc defines read operations for pools and positions
type LiquidityReaderSvc interface {
	ListPools(ctx context.Context) ([]domain.PoolWithCurrencies, error)
	GetPool(ctx context.Context, id int64) (*domain.PoolWithCurrencies, error)
	ListPositionsByUser(ctx context.Context, userID int64) ([]domain.PositionWithPool, error)
}

// LiquidityWriterSvc defines write operations for pools and positions
type LiquidityWriterSvc interface {
	// Contribute stakes an amount into an existing pool.
	Contribute(ctx context.Context, req dto.CreateLiquidityPositionRequest) (*domain.LiquidityPosition, error)
}

// LiquiditySvcFacade combines all liquidity-related service interfaces
type LiquiditySvcFacade interface {
	LiquidityReaderSvc
	LiquidityWriterSvc
}
