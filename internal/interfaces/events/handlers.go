package events

import (
	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"airline/internal/application/services"
)

// FlightOpsHandlers wires the six command events to the flight operations
// service. All handlers live in one group and therefore share one ordered
// subscription: the service is the only writer of the registry.
func FlightOpsHandlers(ops *services.FlightOpsService) []cqrs.GroupEventHandler {
	return []cqrs.GroupEventHandler{
		cqrs.NewGroupEventHandler(ops.ScheduleFlight),
		cqrs.NewGroupEventHandler(ops.DelayFlight),
		cqrs.NewGroupEventHandler(ops.CancelFlight),
		cqrs.NewGroupEventHandler(ops.SetCheckInNumber),
		cqrs.NewGroupEventHandler(ops.SetGateNumber),
		cqrs.NewGroupEventHandler(ops.BuyTicket),
	}
}
