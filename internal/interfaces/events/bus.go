package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Topics. All command events share one topic so the processor applies them
// in a single total order; the two notification families get a queue each so
// a slow mail sink stalls only its own dispatcher.
const (
	FlightEventsTopic        = "events.flight-ops"
	MassNotificationsTopic   = "notifications.mass"
	SingleNotificationsTopic = "notifications.single"
)

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

// NewEventBus publishes command events to the single ordered stream.
func NewEventBus(pub message.Publisher, logger watermill.LoggerAdapter) (*cqrs.EventBus, error) {
	return newBus(pub, FlightEventsTopic, logger)
}

// NewMassNotificationBus publishes flight-wide notifications.
func NewMassNotificationBus(pub message.Publisher, logger watermill.LoggerAdapter) (*cqrs.EventBus, error) {
	return newBus(pub, MassNotificationsTopic, logger)
}

// NewSingleNotificationBus publishes per-transaction booking outcomes.
func NewSingleNotificationBus(pub message.Publisher, logger watermill.LoggerAdapter) (*cqrs.EventBus, error) {
	return newBus(pub, SingleNotificationsTopic, logger)
}

func newBus(pub message.Publisher, topic string, logger watermill.LoggerAdapter) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(
		pub,
		cqrs.EventBusConfig{
			GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
				return topic, nil
			},
			Marshaler: marshaler,
			Logger:    logger,
		},
	)
}
