package events

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Handler groups. Each group gets exactly one subscription, so messages
// within a group are handled sequentially in publish order.
const (
	FlightOpsGroup           = "flight-ops"
	MassNotificationsGroup   = "mass-notifications"
	SingleNotificationsGroup = "single-notifications"
)

func NewEventProcessor(
	router *message.Router,
	subscriber message.Subscriber,
	logger watermill.LoggerAdapter,
) (*cqrs.EventGroupProcessor, error) {
	return cqrs.NewEventGroupProcessorWithConfig(
		router,
		cqrs.EventGroupProcessorConfig{
			GenerateSubscribeTopic: func(params cqrs.EventGroupProcessorGenerateSubscribeTopicParams) (string, error) {
				switch params.EventGroupName {
				case FlightOpsGroup:
					return FlightEventsTopic, nil
				case MassNotificationsGroup:
					return MassNotificationsTopic, nil
				case SingleNotificationsGroup:
					return SingleNotificationsTopic, nil
				default:
					return "", fmt.Errorf("unknown handler group: %s", params.EventGroupName)
				}
			},
			SubscriberConstructor: func(params cqrs.EventGroupProcessorSubscriberConstructorParams) (message.Subscriber, error) {
				return subscriber, nil
			},
			Marshaler: marshaler,
			Logger:    logger,
		},
	)
}
