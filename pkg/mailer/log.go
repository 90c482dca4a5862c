package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer stands in for Mailgun when no sending domain is configured. It
// records each confirmation it would have sent.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log.With(zap.String("adapter", "log-mailer"))}
}

func (m *LogMailer) SendOrderConfirmation(ctx context.Context, to, transactionID string) error {
	m.log.Info("Order confirmation not delivered, mail provider not configured",
		zap.String("to", to),
		zap.String("transaction_id", transactionID),
	)
	return nil
}
