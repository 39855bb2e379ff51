package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a service over the read-only currency store.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

// normalizeCode upper-cases a currency code; lookups are case-insensitive.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	code = normalizeCode(code)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotFound, code)
		}
		s.LogError(ctx, err, "Failed to get currency by code", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to get currency %s: %w", code, err)
	}
	return currency, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrCurrencyNotFound, id)
		}
		s.LogError(ctx, err, "Failed to get currency by id", slog.Int64("currency_id", id))
		return nil, fmt.Errorf("failed to get currency %d: %w", id, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
