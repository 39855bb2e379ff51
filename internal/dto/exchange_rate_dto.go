package dto

import (
	"time"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID               int64           `json:"id"`
	SourceCurrencyID int64           `json:"sourceCurrencyId"`
	TargetCurrencyID int64           `json:"targetCurrencyId"`
	Rate             decimal.Decimal `json:"rate"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:               rate.ID,
		SourceCurrencyID: rate.SourceCurrencyID,
		TargetCurrencyID: rate.TargetCurrencyID,
		Rate:             rate.Rate,
		UpdatedAt:        rate.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
