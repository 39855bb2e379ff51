package repositories

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
// Currencies are seeded reference data; there is no writer.
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its numeric ID.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade is what services depend on.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
