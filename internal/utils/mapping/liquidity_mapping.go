package mapping

import (
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/models"
)

// ToModelLiquidityPool converts a domain LiquidityPool to a model LiquidityPool
func ToModelLiquidityPool(d domain.LiquidityPool) models.LiquidityPool {
	return models.LiquidityPool{
		ID:               d.ID,
		SourceCurrencyID: d.SourceCurrencyID,
		TargetCurrencyID: d.TargetCurrencyID,
		TotalLiquidity:   d.TotalLiquidity,
		DailyVolume:      d.DailyVolume,
		APY:              d.APY,
	}
}

// ToDomainLiquidityPool converts a model LiquidityPool to a domain LiquidityPool
func ToDomainLiquidityPool(m models.LiquidityPool) domain.LiquidityPool {
	return domain.LiquidityPool{
		ID:               m.ID,
		SourceCurrencyID: m.SourceCurrencyID,
		TargetCurrencyID: m.TargetCurrencyID,
		TotalLiquidity:   m.TotalLiquidity,
		DailyVolume:      m.DailyVolume,
		APY:              m.APY,
	}
}

// ToDomainLiquidityPoolSlice converts a slice of model pools to domain pools
func ToDomainLiquidityPoolSlice(ms []models.LiquidityPool) []domain.LiquidityPool {
	ds := make([]domain.LiquidityPool, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLiquidityPool(m)
	}
	return ds
}

// ToModelLiquidityPosition converts a domain LiquidityPosition to a model LiquidityPosition
func ToModelLiquidityPosition(d domain.LiquidityPosition) models.LiquidityPosition {
	return models.LiquidityPosition{
		ID:        d.ID,
		UserID:    d.UserID,
		PoolID:    d.PoolID,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainLiquidityPosition converts a model LiquidityPosition to a domain LiquidityPosition
func ToDomainLiquidityPosition(m models.LiquidityPosition) domain.LiquidityPosition {
	return domain.LiquidityPosition{
		ID:        m.ID,
		UserID:    m.UserID,
		PoolID:    m.PoolID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainLiquidityPositionSlice converts a slice of model positions to domain positions
func ToDomainLiquidityPositionSlice(ms []models.LiquidityPosition) []domain.LiquidityPosition {
	ds := make([]domain.LiquidityPosition, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLiquidityPosition(m)
	}
	return ds
}
