package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a remittance.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Valid reports whether s is one of the known states.
func (s TransactionStatus) Valid() bool {
	return s == StatusPending || s.IsTerminal()
}

// Transaction is a cross-parachain remittance. It is created pending and
// resolved exactly once.
type Transaction struct {
	ID               int64             `json:"id"`
	UserID           *int64            `json:"userId"`
	SourceAmount     decimal.Decimal   `json:"sourceAmount"`
	SourceCurrencyID int64             `json:"sourceCurrencyId"`
	TargetAmount     decimal.Decimal   `json:"targetAmount"`
	TargetCurrencyID int64             `json:"targetCurrencyId"`
	RecipientAddress string            `json:"recipientAddress"`
	Fee              decimal.Decimal   `json:"fee"`
	Status           TransactionStatus `json:"status"`
	TxHash           *string           `json:"txHash,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// Resolution is the terminal outcome applied to a pending transaction.
type Resolution struct {
	Status TransactionStatus
	TxHash *string
}

// Validate checks the resolution's internal consistency: completed carries a
// hash, failed does not.
func (r Resolution) Validate() error {
	switch r.Status {
	case StatusCompleted:
		if r.TxHash == nil || *r.TxHash == "" {
			return fmt.Errorf("completed resolution requires a transaction hash")
		}
	case StatusFailed:
		if r.TxHash != nil {
			return fmt.Errorf("failed resolution must not carry a transaction hash")
		}
	default:
		return fmt.Errorf("resolution status must be terminal, got %q", r.Status)
	}
	return nil
}

// Resolve applies r to t. Only pending transactions can be resolved.
func (t *Transaction) Resolve(r Resolution) error {
	if t.Status != StatusPending {
		return fmt.Errorf("transaction %d is already %s", t.ID, t.Status)
	}
	if err := r.Validate(); err != nil {
		return err
	}
	t.Status = r.Status
	t.TxHash = r.TxHash
	return nil
}
