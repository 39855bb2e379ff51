package repositories

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the rate for the ordered pair (source, target).
	// It returns apperrors.ErrNotFound when no row exists; the inverse pair is not consulted.
	FindExchangeRate(ctx context.Context, sourceCurrencyID, targetCurrencyID int64) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every seeded rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
}
