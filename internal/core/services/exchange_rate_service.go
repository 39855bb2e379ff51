package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
)

type exchangeRateService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencySvcFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

// GetExchangeRate returns the directional rate source -> target. A rate for
// target -> source is never inverted to answer the request.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, sourceCode, targetCode string) (*domain.ExchangeRate, error) {
	source, err := s.currencyService.GetCurrencyByCode(ctx, sourceCode)
	if err != nil {
		return nil, err
	}
	target, err := s.currencyService.GetCurrencyByCode(ctx, targetCode)
	if err != nil {
		return nil, err
	}
	rate, err := findRate(ctx, s.rateRepo, source, target)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find exchange rate")
	}
	return rate, err
}

// findRate looks up the ordered pair and maps a missing row to ErrRateNotFound.
func findRate(ctx context.Context, repo portsrepo.ExchangeRateReader, source, target *domain.Currency) (*domain.ExchangeRate, error) {
	rate, err := repo.FindExchangeRate(ctx, source.ID, target.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrRateNotFound, source.Code, target.Code)
		}
		return nil, fmt.Errorf("failed to find exchange rate %s to %s: %w", source.Code, target.Code, err)
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}
