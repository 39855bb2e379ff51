package services

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteSvcFacade prices prospective transfers. It never writes.
type QuoteSvcFacade interface {
	// Calculate returns the fee and converted amount for sourceAmount.
	Calculate(ctx context.Context, sourceAmount decimal.Decimal, sourceCode, targetCode string) (*domain.Quote, error)
}
