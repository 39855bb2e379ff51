package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiquidityPool is a row of the liquidity_pools table.
type LiquidityPool struct {
	ID               int64           `db:"id"`
	SourceCurrencyID int64           `db:"source_currency_id"`
	TargetCurrencyID int64           `db:"target_currency_id"`
	TotalLiquidity   decimal.Decimal `db:"total_liquidity"`
	DailyVolume      decimal.Decimal `db:"daily_volume"`
	APY              decimal.Decimal `db:"apy"`
}

// LiquidityPosition is a row of the liquidity_positions table.
type LiquidityPosition struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	PoolID    int64           `db:"pool_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}
