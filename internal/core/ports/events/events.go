package events

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
)

// TransactionResolvedType is the event type emitted once per resolved transaction.
const TransactionResolvedType = "transaction_resolved"

// TransactionEvent is the payload every sink emits for a resolution.
type TransactionEvent struct {
	Type        string             `json:"type"`
	Transaction domain.Transaction `json:"transaction"`
	OccurredAt  time.Time          `json:"occurredAt"`
}

// NewTransactionResolved builds the event for a transaction that just left pending.
func NewTransactionResolved(tx domain.Transaction) TransactionEvent {
	return TransactionEvent{Type: TransactionResolvedType, Transaction: tx, OccurredAt: time.Now().UTC()}
}

// TransactionPublisher is notified after a transaction reaches a terminal state.
// Publish failures are logged by the caller; they never undo the resolution.
type TransactionPublisher interface {
	PublishTransactionResolved(ctx context.Context, tx domain.Transaction) error
}

// Publishers fans one event out to every sink. All sinks are attempted even
// when one fails.
type Publishers []TransactionPublisher

func (p Publishers) PublishTransactionResolved(ctx context.Context, tx domain.Transaction) error {
	var errs []error
	for _, pub := range p {
		if pub == nil {
			continue
		}
		if err := pub.PublishTransactionResolved(ctx, tx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
