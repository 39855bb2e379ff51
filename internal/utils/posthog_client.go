package utils

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/core/ports/events"
	"github.com/posthog/posthog-go"
)

const posthogEndpoint = "https://eu.i.posthog.com"

// PosthogClientWrapper wraps posthog.Client so callers need not care whether
// analytics is configured. A zero wrapper drops every event.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

var _ events.TransactionPublisher = (*PosthogClientWrapper)(nil)

// InitializePosthogClient returns a wrapper; an empty key yields a no-op wrapper.
func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogClientWrapper{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: posthogEndpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", posthogEndpoint))
	return &PosthogClientWrapper{posthogClient: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	}
	if err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue posthog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// PublishTransactionResolved records the outcome of a settlement. Anonymous
// transactions are attributed to the recipient address.
func (w *PosthogClientWrapper) PublishTransactionResolved(_ context.Context, tx domain.Transaction) error {
	if !w.IsInitialized() {
		return nil
	}
	distinctID := tx.RecipientAddress
	if tx.UserID != nil {
		distinctID = strconv.FormatInt(*tx.UserID, 10)
	}
	w.Enqueue(distinctID, events.TransactionResolvedType, map[string]any{
		"transaction_id":     tx.ID,
		"status":             string(tx.Status),
		"source_currency_id": tx.SourceCurrencyID,
		"target_currency_id": tx.TargetCurrencyID,
		"source_amount":      tx.SourceAmount.String(),
	})
	return nil
}

func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	_ = w.posthogClient.Close()
}
