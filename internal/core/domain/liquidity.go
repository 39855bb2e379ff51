package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiquidityPool holds the liquidity backing one currency corridor. DailyVolume
// and APY are static display values.
type LiquidityPool struct {
	ID               int64           `json:"id"`
	SourceCurrencyID int64           `json:"sourceCurrencyId"`
	TargetCurrencyID int64           `json:"targetCurrencyId"`
	TotalLiquidity   decimal.Decimal `json:"totalLiquidity"`
	DailyVolume      decimal.Decimal `json:"dailyVolume"`
	APY              decimal.Decimal `json:"apy"`
}

// LiquidityPosition is a single, immutable contribution to a pool.
type LiquidityPosition struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	PoolID    int64           `json:"poolId"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PoolWithCurrencies is a pool joined with its corridor currencies.
type PoolWithCurrencies struct {
	LiquidityPool
	SourceCurrency *Currency `json:"sourceCurrency,omitempty"`
	TargetCurrency *Currency `json:"targetCurrency,omitempty"`
}

// PositionWithPool is a position joined with the pool it was made into.
type PositionWithPool struct {
	LiquidityPosition
	Pool *LiquidityPool `json:"pool,omitempty"`
}
