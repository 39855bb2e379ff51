package mapping

import (
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		ID:            d.ID,
		Code:          d.Code,
		Name:          d.Name,
		Symbol:        d.Symbol,
		ParachainName: d.ParachainName,
		ParachainID:   d.ParachainID,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Name,
		Symbol:        m.Symbol,
		ParachainName: m.ParachainName,
		ParachainID:   m.ParachainID,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
