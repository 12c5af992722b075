package notifier

import (
	"context"

	"go.uber.org/zap"

	"mca/pkg/logger"
)

type logNotifier struct{}

// NewLog returns a Notifier that only logs messages. It stands in for SMTP
// when email delivery is disabled.
func NewLog() Notifier {
	return logNotifier{}
}

func (logNotifier) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	logger.Info(ctx, "notification",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text))

	return nil
}
