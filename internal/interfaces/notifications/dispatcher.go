package notifications

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/rs/zerolog"

	"airline/internal/entities"
	"airline/internal/observability"
)

// dispatcher drains one notification queue and calls the mail capability
// synchronously per message. A failed send is retried the configured number
// of times and then logged and dropped: delivery failures never reach the
// event stream or the original caller.
type dispatcher struct {
	sender  EmailSender
	retries int
	metrics *observability.Metrics
	logger  zerolog.Logger
}

func (d *dispatcher) send(ctx context.Context, recipient, text string) {
	var err error
	for attempt := 0; attempt <= d.retries; attempt++ {
		if err = d.sender.Send(ctx, recipient, text); err == nil {
			d.metrics.EmailsSent.Inc()
			return
		}
	}

	d.metrics.EmailFailures.Inc()
	d.logger.Warn().Err(err).
		Str("recipient", recipient).
		Int("attempts", d.retries+1).
		Msg("dropping email after failed send")
}

// MassDispatcher delivers flight-wide notifications. Each notification fans
// out to every ticket holder on the flight snapshot it carries.
type MassDispatcher struct {
	dispatcher
}

func NewMassDispatcher(sender EmailSender, retries int, metrics *observability.Metrics, logger zerolog.Logger) *MassDispatcher {
	return &MassDispatcher{dispatcher{
		sender:  sender,
		retries: retries,
		metrics: metrics,
		logger:  logger,
	}}
}

func (d *MassDispatcher) Handlers() []cqrs.GroupEventHandler {
	return []cqrs.GroupEventHandler{
		cqrs.NewGroupEventHandler(d.flightDelayed),
		cqrs.NewGroupEventHandler(d.flightCancelled),
		cqrs.NewGroupEventHandler(d.checkInChanged),
		cqrs.NewGroupEventHandler(d.gateChanged),
	}
}

func (d *MassDispatcher) flightDelayed(ctx context.Context, n *entities.FlightDelayed) error {
	d.fanOut(ctx, n.Flight, func(ticket entities.Ticket) string {
		return FormatFlightDelayed(ticket, n.Flight, n.ActualDepartureTime)
	})
	return nil
}

func (d *MassDispatcher) flightCancelled(ctx context.Context, n *entities.FlightCancelled) error {
	d.fanOut(ctx, n.Flight, func(ticket entities.Ticket) string {
		return FormatFlightCancelled(ticket, n.Flight)
	})
	return nil
}

func (d *MassDispatcher) checkInChanged(ctx context.Context, n *entities.CheckInChanged) error {
	d.fanOut(ctx, n.Flight, func(ticket entities.Ticket) string {
		return FormatCheckInChanged(ticket, n.Flight, n.CheckInNumber)
	})
	return nil
}

func (d *MassDispatcher) gateChanged(ctx context.Context, n *entities.GateChanged) error {
	d.fanOut(ctx, n.Flight, func(ticket entities.Ticket) string {
		return FormatGateChanged(ticket, n.Flight, n.GateNumber)
	})
	return nil
}

func (d *MassDispatcher) fanOut(ctx context.Context, flight entities.Flight, text func(entities.Ticket) string) {
	for _, ticket := range flight.Tickets {
		d.send(ctx, ticket.PassengerEmail, text(ticket))
	}
}

// SingleDispatcher delivers booking outcomes, one message per BuyTicket
// event, to the prospective passenger.
type SingleDispatcher struct {
	dispatcher
}

func NewSingleDispatcher(sender EmailSender, retries int, metrics *observability.Metrics, logger zerolog.Logger) *SingleDispatcher {
	return &SingleDispatcher{dispatcher{
		sender:  sender,
		retries: retries,
		metrics: metrics,
		logger:  logger,
	}}
}

func (d *SingleDispatcher) Handlers() []cqrs.GroupEventHandler {
	return []cqrs.GroupEventHandler{
		cqrs.NewGroupEventHandler(d.purchaseConfirmed),
		cqrs.NewGroupEventHandler(d.seatOccupied),
		cqrs.NewGroupEventHandler(d.flightClosed),
		cqrs.NewGroupEventHandler(d.incorrectFlight),
	}
}

func (d *SingleDispatcher) purchaseConfirmed(ctx context.Context, n *entities.PurchaseConfirmed) error {
	d.send(ctx, n.TicketInfo.PassengerEmail, FormatPurchaseConfirmed(n.TicketInfo))
	return nil
}

func (d *SingleDispatcher) seatOccupied(ctx context.Context, n *entities.SeatOccupied) error {
	d.send(ctx, n.TicketInfo.PassengerEmail, FormatSeatOccupied(n.TicketInfo))
	return nil
}

func (d *SingleDispatcher) flightClosed(ctx context.Context, n *entities.FlightClosed) error {
	d.send(ctx, n.TicketInfo.PassengerEmail, FormatFlightClosed(n.TicketInfo))
	return nil
}

func (d *SingleDispatcher) incorrectFlight(ctx context.Context, n *entities.IncorrectFlight) error {
	d.send(ctx, n.TicketInfo.PassengerEmail, FormatIncorrectFlight(n.TicketInfo))
	return nil
}
