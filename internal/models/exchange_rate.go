package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table. (source, target) is unique.
type ExchangeRate struct {
	ID               int64           `db:"id"`
	SourceCurrencyID int64           `db:"source_currency_id"`
	TargetCurrencyID int64           `db:"target_currency_id"`
	Rate             decimal.Decimal `db:"rate"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
