package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	ID               int64           `db:"id"`
	UserID           *int64          `db:"user_id"` // Nullable for anonymous senders
	SourceAmount     decimal.Decimal `db:"source_amount"`
	SourceCurrencyID int64           `db:"source_currency_id"`
	TargetAmount     decimal.Decimal `db:"target_amount"`
	TargetCurrencyID int64           `db:"target_currency_id"`
	RecipientAddress string          `db:"recipient_address"`
	Fee              decimal.Decimal `db:"fee"`
	Status           string          `db:"status"`
	TxHash           *string         `db:"tx_hash"`
	CreatedAt        time.Time       `db:"created_at"`
}
