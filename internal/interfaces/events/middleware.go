package events

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const correlationIDKey = "correlation_id"

// CorrelationIDMiddleware makes sure every message carries a correlation ID
// so notifications can be traced back to the command that produced them.
func CorrelationIDMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		if msg.Metadata.Get(correlationIDKey) == "" {
			msg.Metadata.Set(correlationIDKey, uuid.NewString())
		}

		producedMessages, err := next(msg)

		for _, produced := range producedMessages {
			if produced.Metadata.Get(correlationIDKey) == "" {
				produced.Metadata.Set(correlationIDKey, msg.Metadata.Get(correlationIDKey))
			}
		}

		return producedMessages, err
	}
}

// LoggingMiddleware logs every handled message with its correlation ID.
func LoggingMiddleware(logger zerolog.Logger) message.HandlerMiddleware {
	return func(next message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			logger.Debug().
				Str("message_uuid", msg.UUID).
				Str(correlationIDKey, msg.Metadata.Get(correlationIDKey)).
				Str("name", msg.Metadata.Get("name")).
				Msg("handling message")

			producedMessages, err := next(msg)
			if err != nil {
				logger.Error().Err(err).
					Str("message_uuid", msg.UUID).
					Str(correlationIDKey, msg.Metadata.Get(correlationIDKey)).
					Msg("message handling error")
			}

			return producedMessages, err
		}
	}
}
