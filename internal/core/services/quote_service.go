package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type quoteService struct {
	BaseService
	currencyService portssvc.CurrencySvcFacade
	rateRepo        portsrepo.ExchangeRateReader
}

// NewQuoteService creates the quote calculator. It reads the currency and
// rate stores and writes nothing.
func NewQuoteService(currencyService portssvc.CurrencySvcFacade, rateRepo portsrepo.ExchangeRateReader) portssvc.QuoteSvcFacade {
	return &quoteService{
		currencyService: currencyService,
		rateRepo:        rateRepo,
	}
}

func (s *quoteService) Calculate(ctx context.Context, sourceAmount decimal.Decimal, sourceCode, targetCode string) (*domain.Quote, error) {
	if !sourceAmount.IsPositive() {
		return nil, fmt.Errorf("%w: source amount must be positive", apperrors.ErrValidation)
	}

	source, err := s.currencyService.GetCurrencyByCode(ctx, sourceCode)
	if err != nil {
		return nil, err
	}
	target, err := s.currencyService.GetCurrencyByCode(ctx, targetCode)
	if err != nil {
		return nil, err
	}

	rate, err := findRate(ctx, s.rateRepo, source, target)
	if err != nil {
		return nil, err
	}

	quote := domain.NewQuote(sourceAmount, *source, *target, rate.Rate)
	s.LogDebug(ctx, "Quote calculated",
		"source", source.Code, "target", target.Code,
		"fee", quote.Fee.String(), "converted_amount", quote.ConvertedAmount.String())
	return &quote, nil
}
