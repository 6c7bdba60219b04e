package notifications

import (
	"context"

	"github.com/rs/zerolog"
)

// EmailSender is the mail capability the core consumes. Sending may be slow
// and may fail; retry policy beyond the configured attempts is the sender's
// own business.
type EmailSender interface {
	Send(ctx context.Context, recipient, text string) error
}

// LogEmailSender writes outgoing mail to the log. It stands in for a real
// mail transport, which is outside the operations core.
type LogEmailSender struct {
	logger zerolog.Logger
}

func NewLogEmailSender(logger zerolog.Logger) *LogEmailSender {
	return &LogEmailSender{logger: logger}
}

func (s *LogEmailSender) Send(ctx context.Context, recipient, text string) error {
	s.logger.Info().
		Str("recipient", recipient).
		Str("text", text).
		Msg("email sent")
	return nil
}
