package notify

import (
	"context"
	"log/slog"
)

// LogSink writes settlement events to the structured log. It stands in
// for the broker when no AMQP URI is configured.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink backed by the given logger
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Publish logs the settlement event
func (s *LogSink) Publish(_ context.Context, event PaymentEvent) error {
	s.logger.Info("payment event",
		"payment_id", event.PaymentID,
		"account_id", event.AccountID,
		"amount", event.Amount,
		"currency", event.Currency,
		"outcome", event.Outcome,
		"reason", event.Reason,
	)
	return nil
}

// Close is a no-op
func (s *LogSink) Close() error {
	return nil
}
