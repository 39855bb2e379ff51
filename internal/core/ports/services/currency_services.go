package services

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// GetCurrencyByID retrieves a specific currency by its ID.
	GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the rate for an ordered pair of currency codes.
	GetExchangeRate(ctx context.Context, sourceCode, targetCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
}
