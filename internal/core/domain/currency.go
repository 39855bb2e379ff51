package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency and the parachain it notionally settles on.
type Currency struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`          // Unique (e.g., "USD")
	Name          string `json:"name"`          // e.g., "US Dollar"
	Symbol        string `json:"symbol"`        // e.g., "$"
	ParachainName string `json:"parachainName"` // e.g., "Acala"
	ParachainID   string `json:"parachainId"`   // e.g., "USDC Stablecoin"
}

// ExchangeRate is the directional conversion rate for an ordered currency pair.
// At most one rate exists per (source, target); the inverse is never derived.
type ExchangeRate struct {
	ID               int64           `json:"id"`
	SourceCurrencyID int64           `json:"sourceCurrencyId"`
	TargetCurrencyID int64           `json:"targetCurrencyId"`
	Rate             decimal.Decimal `json:"rate"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
