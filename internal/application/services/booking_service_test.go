package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline/internal/entities"
	"airline/internal/repository"
)

func newBookingFixture(now time.Time) (*BookingService, *repository.FlightsRepo, *fakePublisher) {
	repo := repository.NewFlightsRepo()
	events := &fakePublisher{}
	svc := NewBookingService(repo, events, testConfig())
	svc.now = func() time.Time { return now }
	return svc, repo, events
}

func TestFlightScheduleFiltersSaleCutoff(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, repo, _ := newBookingFixture(now)
	plane := entities.Plane{Name: "B737", Seats: []string{"1A"}}

	// open: departs in 2h, cutoff is 30m
	repo.Insert(entities.NewFlight("OPEN", now.Add(2*time.Hour), plane))
	// closed: departs in 20m
	repo.Insert(entities.NewFlight("CLOSED", now.Add(20*time.Minute), plane))
	// cancelled flights are not open for sale
	cancelled := entities.NewFlight("CANCELLED", now.Add(3*time.Hour), plane)
	cancelled.IsCancelled = true
	repo.Insert(cancelled)

	schedule := svc.FlightSchedule()
	require.Len(t, schedule, 1)
	assert.Equal(t, "OPEN", schedule[0].FlightID)
}

func TestFreeSeats(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	departure := now.Add(2 * time.Hour)
	svc, repo, _ := newBookingFixture(now)

	flight := entities.NewFlight("111", departure, entities.Plane{
		Name:  "B737",
		Seats: []string{"2B", "1A", "2A", "1B"},
	})
	flight = flight.WithTicket(entities.Ticket{
		FlightID: "111", DepartureTime: departure, SeatNo: "2A",
		PassengerID: "1", PassengerName: "Alice", PassengerEmail: "alice@example.com",
	})
	repo.Insert(flight)

	assert.Equal(t, []string{"1A", "1B", "2B"}, svc.FreeSeats("111", departure))
}

func TestFreeSeatsUnknownFlight(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newBookingFixture(now)

	assert.Empty(t, svc.FreeSeats("999", now.Add(time.Hour)))
}

func TestBuyTicketPublishesEvent(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	departure := now.Add(2 * time.Hour)
	svc, _, events := newBookingFixture(now)

	err := svc.BuyTicket(context.Background(), "111", departure, "1A", "1", "Alice", "alice@example.com")
	require.NoError(t, err)

	published := events.events()
	require.Len(t, published, 1)
	event, ok := published[0].(entities.BuyTicket)
	require.True(t, ok, "expected BuyTicket, got %T", published[0])
	assert.Equal(t, "111", event.FlightID)
	assert.Equal(t, "1A", event.SeatNo)
	assert.Equal(t, "alice@example.com", event.PassengerEmail)
	assert.NotEmpty(t, event.Header.ID)
}
