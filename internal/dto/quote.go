package dto

import (
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateRequest asks for a quote. Amounts may be sent as JSON numbers or strings.
type CalculateRequest struct {
	SourceAmount       decimal.Decimal `json:"sourceAmount" binding:"required,gt=0"`
	SourceCurrencyCode string          `json:"sourceCurrencyCode" binding:"required"`
	TargetCurrencyCode string          `json:"targetCurrencyCode" binding:"required"`
}

// CalculateResponse is the priced quote.
type CalculateResponse struct {
	SourceAmount    decimal.Decimal  `json:"sourceAmount"`
	SourceCurrency  CurrencyResponse `json:"sourceCurrency"`
	TargetCurrency  CurrencyResponse `json:"targetCurrency"`
	ExchangeRate    decimal.Decimal  `json:"exchangeRate"`
	Fee             decimal.Decimal  `json:"fee"`
	ConvertedAmount decimal.Decimal  `json:"convertedAmount"`
}

// ToCalculateResponse converts a domain.Quote to CalculateResponse DTO
func ToCalculateResponse(q *domain.Quote) CalculateResponse {
	return CalculateResponse{
		SourceAmount:    q.SourceAmount,
		SourceCurrency:  ToCurrencyResponse(&q.SourceCurrency),
		TargetCurrency:  ToCurrencyResponse(&q.TargetCurrency),
		ExchangeRate:    q.ExchangeRate,
		Fee:             q.Fee,
		ConvertedAmount: q.ConvertedAmount,
	}
}
