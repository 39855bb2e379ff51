package dto

import (
	"time"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLiquidityPositionRequest defines the data needed to stake into a pool.
// UserID may be omitted when the request carries a bearer token.
type CreateLiquidityPositionRequest struct {
	UserID *int64          `json:"userId" binding:"omitempty,gt=0"`
	PoolID int64           `json:"poolId" binding:"required,gt=0"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// LiquidityPoolResponse defines the data returned for a pool.
type LiquidityPoolResponse struct {
	ID               int64             `json:"id"`
	SourceCurrencyID int64             `json:"sourceCurrencyId"`
	TargetCurrencyID int64             `json:"targetCurrencyId"`
	TotalLiquidity   decimal.Decimal   `json:"totalLiquidity"`
	DailyVolume      decimal.Decimal   `json:"dailyVolume"`
	APY              decimal.Decimal   `json:"apy"`
	SourceCurrency   *CurrencyResponse `json:"sourceCurrency,omitempty"`
	TargetCurrency   *CurrencyResponse `json:"targetCurrency,omitempty"`
}

// LiquidityPositionResponse defines the data returned for a position.
type LiquidityPositionResponse struct {
	ID        int64                  `json:"id"`
	UserID    int64                  `json:"userId"`
	PoolID    int64                  `json:"poolId"`
	Amount    decimal.Decimal        `json:"amount"`
	CreatedAt time.Time              `json:"createdAt"`
	Pool      *LiquidityPoolResponse `json:"pool,omitempty"`
}

// ToLiquidityPoolResponse converts a domain.LiquidityPool to LiquidityPoolResponse DTO
func ToLiquidityPoolResponse(pool *domain.LiquidityPool) LiquidityPoolResponse {
	return LiquidityPoolResponse{
		ID:               pool.ID,
		SourceCurrencyID: pool.SourceCurrencyID,
		TargetCurrencyID: pool.TargetCurrencyID,
		TotalLiquidity:   pool.TotalLiquidity,
		DailyVolume:      pool.DailyVolume,
		APY:              pool.APY,
	}
}

// ToPoolWithCurrenciesResponse converts a pool joined with its currencies.
func ToPoolWithCurrenciesResponse(pool *domain.PoolWithCurrencies) LiquidityPoolResponse {
	resp := ToLiquidityPoolResponse(&pool.LiquidityPool)
	if pool.SourceCurrency != nil {
		c := ToCurrencyResponse(pool.SourceCurrency)
		resp.SourceCurrency = &c
	}
	if pool.TargetCurrency != nil {
		c := ToCurrencyResponse(pool.TargetCurrency)
		resp.TargetCurrency = &c
	}
	return resp
}

// ToListLiquidityPoolResponse converts pools joined with their currencies.
func ToListLiquidityPoolResponse(pools []domain.PoolWithCurrencies) []LiquidityPoolResponse {
	res := make([]LiquidityPoolResponse, len(pools))
	for i := range pools {
		res[i] = ToPoolWithCurrenciesResponse(&pools[i])
	}
	return res
}

// ToLiquidityPositionResponse converts a domain.LiquidityPosition to LiquidityPositionResponse DTO
func ToLiquidityPositionResponse(pos *domain.LiquidityPosition) LiquidityPositionResponse {
	return LiquidityPositionResponse{
		ID:        pos.ID,
		UserID:    pos.UserID,
		PoolID:    pos.PoolID,
		Amount:    pos.Amount,
		CreatedAt: pos.CreatedAt,
	}
}

// ToListLiquidityPositionResponse converts positions joined with their pools.
func ToListLiquidityPositionResponse(positions []domain.PositionWithPool) []LiquidityPositionResponse {
	res := make([]LiquidityPositionResponse, len(positions))
	for i := range positions {
		resp := ToLiquidityPositionResponse(&positions[i].LiquidityPosition)
		if positions[i].Pool != nil {
			p := ToLiquidityPoolResponse(positions[i].Pool)
			resp.Pool = &p
		}
		res[i] = resp
	}
	return res
}
