// Package notification delivers plan summaries to the household.
package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Notifier sends a text message to a recipient.
type Notifier interface {
	Send(ctx context.Context, to, text string) error
}

// TextSender is the subset of the WhatsApp client the notifier needs.
type TextSender interface {
	SendText(ctx context.Context, to, body string) ([]string, error)
}

// WhatsAppNotifier sends messages through the WhatsApp Cloud API.
type WhatsAppNotifier struct {
	client TextSender
	logger *zap.Logger
}

// NewWhatsAppNotifier wraps a WhatsApp client.
func NewWhatsAppNotifier(client TextSender, logger *zap.Logger) *WhatsAppNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhatsAppNotifier{client: client, logger: logger}
}

// Send delivers text to the recipient.
func (n *WhatsAppNotifier) Send(ctx context.Context, to, text string) error {
	if to == "" {
		return fmt.Errorf("notification recipient is empty")
	}

	ids, err := n.client.SendText(ctx, to, text)
	if err != nil {
		return fmt.Errorf("send to %s: %w", to, err)
	}

	n.logger.Info("notification sent", zap.String("to", to), zap.Strings("message_ids", ids))
	return nil
}

// LogNotifier only logs messages. It stands in when WhatsApp is not configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier builds a notifier that writes messages to the log.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Send logs the message.
func (n *LogNotifier) Send(_ context.Context, to, text string) error {
	n.logger.Info("notification skipped, no transport configured", zap.String("to", to), zap.Int("length", len(text)))
	return nil
}
