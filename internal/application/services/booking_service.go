package services

import (
	"context"
	"sort"
	"time"

	"airline/internal/config"
	"airline/internal/entities"
	"airline/internal/repository"
)

// BookingService is the passenger-facing surface: read projections over the
// live registry plus the fire-and-forget purchase command. Buying a ticket
// returns as soon as the event is accepted into the stream; the outcome is
// observable only through the notification feed or by re-querying free seats.
type BookingService struct {
	repo   *repository.FlightsRepo
	events EventPublisher
	config config.AirlineConfig

	now func() time.Time
}

func NewBookingService(repo *repository.FlightsRepo, events EventPublisher, cfg config.AirlineConfig) *BookingService {
	return &BookingService{
		repo:   repo,
		events: events,
		config: cfg,
		now:    time.Now,
	}
}

// FlightSchedule lists flights still open for sale: not cancelled and with
// the sale cutoff not yet reached.
func (s *BookingService) FlightSchedule() []entities.FlightInfo {
	currentTime := s.now()

	var schedule []entities.FlightInfo
	for _, flight := range s.repo.List() {
		if flight.IsCancelled {
			continue
		}
		if !currentTime.Before(flight.DepartureTime.Add(-s.config.TicketSaleEnd)) {
			continue
		}
		schedule = append(schedule, flight.Info())
	}
	return schedule
}

// FreeSeats returns the plane seats without a ticket, sorted for stable
// output. Unknown flights have no free seats.
func (s *BookingService) FreeSeats(flightID string, departureTime time.Time) []string {
	flight, ok := s.repo.Find(flightID, departureTime)
	if !ok {
		return nil
	}

	var free []string
	for _, seatNo := range flight.Plane.Seats {
		if _, taken := flight.Tickets[seatNo]; !taken {
			free = append(free, seatNo)
		}
	}
	sort.Strings(free)
	return free
}

func (s *BookingService) BuyTicket(
	ctx context.Context,
	flightID string,
	departureTime time.Time,
	seatNo string,
	passengerID string,
	passengerName string,
	passengerEmail string,
) error {
	return s.events.Publish(ctx, entities.BuyTicket{
		Header:         entities.NewEventHeader(),
		FlightID:       flightID,
		DepartureTime:  departureTime,
		SeatNo:         seatNo,
		PassengerID:    passengerID,
		PassengerName:  passengerName,
		PassengerEmail: passengerEmail,
	})
}
