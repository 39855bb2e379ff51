package mapping

import (
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ID:               d.ID,
		SourceCurrencyID: d.SourceCurrencyID,
		TargetCurrencyID: d.TargetCurrencyID,
		Rate:             d.Rate,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:               m.ID,
		SourceCurrencyID: m.SourceCurrencyID,
		TargetCurrencyID: m.TargetCurrencyID,
		Rate:             m.Rate,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToDomainExchangeRateSlice converts a slice of model ExchangeRates to domain ExchangeRates
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
