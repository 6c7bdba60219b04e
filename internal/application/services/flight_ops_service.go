package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"airline/internal/config"
	"airline/internal/entities"
	"airline/internal/observability"
	"airline/internal/repository"
)

// EventPublisher is satisfied by *cqrs.EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// FlightOpsService applies command events to the flight registry. It is the
// only writer of the registry: its methods run on the single event-consumer
// task, one event at a time, in publish order. Commands referencing unknown
// flights are dropped silently, per the fire-and-forget contract.
type FlightOpsService struct {
	repo            *repository.FlightsRepo
	massPublisher   EventPublisher
	singlePublisher EventPublisher
	config          config.AirlineConfig
	metrics         *observability.Metrics
	logger          zerolog.Logger

	now func() time.Time
}

func NewFlightOpsService(
	repo *repository.FlightsRepo,
	massPublisher EventPublisher,
	singlePublisher EventPublisher,
	cfg config.AirlineConfig,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *FlightOpsService {
	return &FlightOpsService{
		repo:            repo,
		massPublisher:   massPublisher,
		singlePublisher: singlePublisher,
		config:          cfg,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// ScheduleFlight inserts a new flight. Scheduling the same
// (flight id, departure time) twice is a no-op.
func (s *FlightOpsService) ScheduleFlight(ctx context.Context, event *entities.ScheduleFlight) error {
	if _, ok := s.repo.Find(event.FlightID, event.DepartureTime); ok {
		s.logger.Debug().
			Str("flight_id", event.FlightID).
			Time("departure_time", event.DepartureTime).
			Msg("flight already scheduled, ignoring")
		return nil
	}

	s.repo.Insert(entities.NewFlight(event.FlightID, event.DepartureTime, event.Plane))
	s.metrics.EventsProcessed.WithLabelValues("schedule_flight").Inc()
	return nil
}

func (s *FlightOpsService) DelayFlight(ctx context.Context, event *entities.DelayFlight) error {
	flight, ok := s.repo.Find(event.FlightID, event.DepartureTime)
	if !ok {
		s.logUnknownFlight("delay_flight", event.FlightID, event.DepartureTime)
		return nil
	}

	s.repo.Update(event.FlightID, event.DepartureTime, func(f entities.Flight) entities.Flight {
		f.ActualDepartureTime = event.ActualDepartureTime
		return f
	})
	s.metrics.EventsProcessed.WithLabelValues("delay_flight").Inc()

	// The notification carries the snapshot from before the update so the
	// message can state both the old and the new departure time.
	s.publishMass(ctx, entities.FlightDelayed{
		Header:              entities.NewEventHeader(),
		Flight:              flight,
		ActualDepartureTime: event.ActualDepartureTime,
	})
	return nil
}

func (s *FlightOpsService) CancelFlight(ctx context.Context, event *entities.CancelFlight) error {
	flight, ok := s.repo.Find(event.FlightID, event.DepartureTime)
	if !ok {
		s.logUnknownFlight("cancel_flight", event.FlightID, event.DepartureTime)
		return nil
	}

	s.repo.Update(event.FlightID, event.DepartureTime, func(f entities.Flight) entities.Flight {
		f.IsCancelled = true
		return f
	})
	s.metrics.EventsProcessed.WithLabelValues("cancel_flight").Inc()

	s.publishMass(ctx, entities.FlightCancelled{
		Header: entities.NewEventHeader(),
		Flight: flight,
	})
	return nil
}

func (s *FlightOpsService) SetCheckInNumber(ctx context.Context, event *entities.SetCheckInNumber) error {
	flight, ok := s.repo.Find(event.FlightID, event.DepartureTime)
	if !ok {
		s.logUnknownFlight("set_check_in_number", event.FlightID, event.DepartureTime)
		return nil
	}

	s.repo.Update(event.FlightID, event.DepartureTime, func(f entities.Flight) entities.Flight {
		f.CheckInNumber = event.CheckInNumber
		return f
	})
	s.metrics.EventsProcessed.WithLabelValues("set_check_in_number").Inc()

	s.publishMass(ctx, entities.CheckInChanged{
		Header:        entities.NewEventHeader(),
		Flight:        flight,
		CheckInNumber: event.CheckInNumber,
	})
	return nil
}

func (s *FlightOpsService) SetGateNumber(ctx context.Context, event *entities.SetGateNumber) error {
	flight, ok := s.repo.Find(event.FlightID, event.DepartureTime)
	if !ok {
		s.logUnknownFlight("set_gate_number", event.FlightID, event.DepartureTime)
		return nil
	}

	s.repo.Update(event.FlightID, event.DepartureTime, func(f entities.Flight) entities.Flight {
		f.GateNumber = event.GateNumber
		return f
	})
	s.metrics.EventsProcessed.WithLabelValues("set_gate_number").Inc()

	s.publishMass(ctx, entities.GateChanged{
		Header:     entities.NewEventHeader(),
		Flight:     flight,
		GateNumber: event.GateNumber,
	})
	return nil
}

// BuyTicket resolves a purchase request into exactly one outcome
// notification. The first failing check wins:
// unknown/cancelled flight or seat not on the plane, then closed sales,
// then occupied seat. No check raises an error back to the caller.
func (s *FlightOpsService) BuyTicket(ctx context.Context, event *entities.BuyTicket) error {
	flight, ok := s.repo.Find(event.FlightID, event.DepartureTime)

	if !ok || flight.IsCancelled || !flight.Plane.HasSeat(event.SeatNo) {
		s.metrics.BookingOutcomes.WithLabelValues("incorrect_flight").Inc()
		s.publishSingle(ctx, entities.IncorrectFlight{
			Header:     entities.NewEventHeader(),
			TicketInfo: *event,
		})
		return nil
	}

	if flight.DepartureTime.Sub(s.now()) <= s.config.TicketSaleEnd {
		s.metrics.BookingOutcomes.WithLabelValues("closed_flight").Inc()
		s.publishSingle(ctx, entities.FlightClosed{
			Header:     entities.NewEventHeader(),
			TicketInfo: *event,
		})
		return nil
	}

	if _, taken := flight.Tickets[event.SeatNo]; taken {
		s.metrics.BookingOutcomes.WithLabelValues("occupied_seat").Inc()
		s.publishSingle(ctx, entities.SeatOccupied{
			Header:     entities.NewEventHeader(),
			TicketInfo: *event,
		})
		return nil
	}

	ticket := entities.Ticket{
		FlightID:       event.FlightID,
		DepartureTime:  event.DepartureTime,
		SeatNo:         event.SeatNo,
		PassengerID:    event.PassengerID,
		PassengerName:  event.PassengerName,
		PassengerEmail: event.PassengerEmail,
	}
	s.repo.Update(event.FlightID, event.DepartureTime, func(f entities.Flight) entities.Flight {
		return f.WithTicket(ticket)
	})

	s.metrics.EventsProcessed.WithLabelValues("buy_ticket").Inc()
	s.metrics.BookingOutcomes.WithLabelValues("confirmed").Inc()
	s.publishSingle(ctx, entities.PurchaseConfirmed{
		Header:     entities.NewEventHeader(),
		TicketInfo: *event,
	})
	return nil
}

// publishMass never fails event processing: a notification that cannot be
// enqueued is logged and dropped, the registry transition has already
// happened and must not be re-applied.
func (s *FlightOpsService) publishMass(ctx context.Context, notification any) {
	if err := s.massPublisher.Publish(ctx, notification); err != nil {
		s.logger.Error().Err(err).Type("notification", notification).
			Msg("failed to enqueue mass notification")
	}
}

func (s *FlightOpsService) publishSingle(ctx context.Context, notification any) {
	if err := s.singlePublisher.Publish(ctx, notification); err != nil {
		s.logger.Error().Err(err).Type("notification", notification).
			Msg("failed to enqueue single notification")
	}
}

func (s *FlightOpsService) logUnknownFlight(event, flightID string, departureTime time.Time) {
	s.logger.Debug().
		Str("event", event).
		Str("flight_id", flightID).
		Time("departure_time", departureTime).
		Msg("event references unknown flight, dropping")
}
