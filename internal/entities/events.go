package entities

import (
	"time"
)

// Events are the only admissible mutation requests for the flight registry.
// They are published to a single topic and applied strictly in publish order.

type ScheduleFlight struct {
	Header        EventHeader `json:"header"`
	FlightID      string      `json:"flight_id"`
	DepartureTime time.Time   `json:"departure_time"`
	Plane         Plane       `json:"plane"`
}

type DelayFlight struct {
	Header              EventHeader `json:"header"`
	FlightID            string      `json:"flight_id"`
	DepartureTime       time.Time   `json:"departure_time"`
	ActualDepartureTime time.Time   `json:"actual_departure_time"`
}

type CancelFlight struct {
	Header        EventHeader `json:"header"`
	FlightID      string      `json:"flight_id"`
	DepartureTime time.Time   `json:"departure_time"`
}

type SetCheckInNumber struct {
	Header        EventHeader `json:"header"`
	FlightID      string      `json:"flight_id"`
	DepartureTime time.Time   `json:"departure_time"`
	CheckInNumber string      `json:"check_in_number"`
}

type SetGateNumber struct {
	Header        EventHeader `json:"header"`
	FlightID      string      `json:"flight_id"`
	DepartureTime time.Time   `json:"departure_time"`
	GateNumber    string      `json:"gate_number"`
}

type BuyTicket struct {
	Header         EventHeader `json:"header"`
	FlightID       string      `json:"flight_id"`
	DepartureTime  time.Time   `json:"departure_time"`
	SeatNo         string      `json:"seat_no"`
	PassengerID    string      `json:"passenger_id"`
	PassengerName  string      `json:"passenger_name"`
	PassengerEmail string      `json:"passenger_email"`
}
