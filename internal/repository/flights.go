package repository

import (
	"sync/atomic"
	"time"

	"airline/internal/entities"
)

// FlightsRepo is the in-memory flight registry. It is single-writer by
// construction: only the event processor task calls Insert and Update, every
// other task reads immutable snapshots through List and Find. Each write
// publishes a fresh copy-on-write slice, so a snapshot handed to a reader is
// never mutated afterwards.
type FlightsRepo struct {
	flights atomic.Pointer[[]entities.Flight]
}

func NewFlightsRepo() *FlightsRepo {
	repo := &FlightsRepo{}
	empty := make([]entities.Flight, 0)
	repo.flights.Store(&empty)
	return repo
}

// List returns the current snapshot. Callers must treat it as read-only.
func (r *FlightsRepo) List() []entities.Flight {
	return *r.flights.Load()
}

func (r *FlightsRepo) Find(flightID string, departureTime time.Time) (entities.Flight, bool) {
	for _, flight := range r.List() {
		if flight.Is(flightID, departureTime) {
			return flight, true
		}
	}
	return entities.Flight{}, false
}

// Insert appends a flight to the registry. Writer task only.
func (r *FlightsRepo) Insert(flight entities.Flight) {
	current := r.List()

	next := make([]entities.Flight, len(current), len(current)+1)
	copy(next, current)
	next = append(next, flight)

	r.flights.Store(&next)
}

// Update replaces the flight with the given identity by change(flight) and
// reports whether the flight was found. The change function must not mutate
// the flight it receives in place (see entities.Flight.WithTicket).
// Writer task only.
func (r *FlightsRepo) Update(flightID string, departureTime time.Time, change func(entities.Flight) entities.Flight) bool {
	current := r.List()

	next := make([]entities.Flight, len(current))
	copy(next, current)

	found := false
	for i, flight := range next {
		if flight.Is(flightID, departureTime) {
			next[i] = change(flight)
			found = true
		}
	}
	if !found {
		return false
	}

	r.flights.Store(&next)
	return true
}
