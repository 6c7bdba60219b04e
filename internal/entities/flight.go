package entities

import (
	"time"
)

// Plane is immutable once constructed. Seat labels are unique.
type Plane struct {
	Name  string   `json:"name"`
	Seats []string `json:"seats"`
}

func (p Plane) HasSeat(seatNo string) bool {
	for _, seat := range p.Seats {
		if seat == seatNo {
			return true
		}
	}
	return false
}

type Ticket struct {
	FlightID       string    `json:"flight_id"`
	DepartureTime  time.Time `json:"departure_time"`
	SeatNo         string    `json:"seat_no"`
	PassengerID    string    `json:"passenger_id"`
	PassengerName  string    `json:"passenger_name"`
	PassengerEmail string    `json:"passenger_email"`
}

// Flight identity is the (FlightID, DepartureTime) pair. Rescheduling means
// creating a new identity pair, never mutating these two fields.
type Flight struct {
	FlightID            string            `json:"flight_id"`
	DepartureTime       time.Time         `json:"departure_time"`
	Plane               Plane             `json:"plane"`
	IsCancelled         bool              `json:"is_cancelled"`
	ActualDepartureTime time.Time         `json:"actual_departure_time"`
	CheckInNumber       string            `json:"check_in_number,omitempty"`
	GateNumber          string            `json:"gate_number,omitempty"`
	Tickets             map[string]Ticket `json:"tickets"`
}

func NewFlight(flightID string, departureTime time.Time, plane Plane) Flight {
	return Flight{
		FlightID:            flightID,
		DepartureTime:       departureTime,
		Plane:               plane,
		ActualDepartureTime: departureTime,
		Tickets:             map[string]Ticket{},
	}
}

// Is reports whether the flight has the given identity. DepartureTime is
// compared as an instant, not structurally.
func (f Flight) Is(flightID string, departureTime time.Time) bool {
	return f.FlightID == flightID && f.DepartureTime.Equal(departureTime)
}

// WithTicket returns a copy of the flight with the ticket added. The tickets
// map is copied so previously published snapshots stay untouched.
func (f Flight) WithTicket(ticket Ticket) Flight {
	tickets := make(map[string]Ticket, len(f.Tickets)+1)
	for seatNo, t := range f.Tickets {
		tickets[seatNo] = t
	}
	tickets[ticket.SeatNo] = ticket

	f.Tickets = tickets
	return f
}

func (f Flight) Info() FlightInfo {
	return FlightInfo{
		FlightID:            f.FlightID,
		DepartureTime:       f.DepartureTime,
		IsCancelled:         f.IsCancelled,
		ActualDepartureTime: f.ActualDepartureTime,
		CheckInNumber:       f.CheckInNumber,
		GateNumber:          f.GateNumber,
		Plane:               f.Plane,
	}
}

// FlightInfo is the read-model projection of a flight, without the tickets.
type FlightInfo struct {
	FlightID            string    `json:"flight_id"`
	DepartureTime       time.Time `json:"departure_time"`
	IsCancelled         bool      `json:"is_cancelled"`
	ActualDepartureTime time.Time `json:"actual_departure_time"`
	CheckInNumber       string    `json:"check_in_number,omitempty"`
	GateNumber          string    `json:"gate_number,omitempty"`
	Plane               Plane     `json:"plane"`
}

type InformationDisplay struct {
	Departing []FlightInfo `json:"departing"`
}
