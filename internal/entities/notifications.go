package entities

import (
	"time"
)

// Mass notifications carry the flight snapshot taken when the change was
// applied and fan out to every ticket holder on that snapshot. The snapshot
// for a delay is the pre-update flight; the changed value travels alongside.

type FlightDelayed struct {
	Header              EventHeader `json:"header"`
	Flight              Flight      `json:"flight"`
	ActualDepartureTime time.Time   `json:"actual_departure_time"`
}

type FlightCancelled struct {
	Header EventHeader `json:"header"`
	Flight Flight      `json:"flight"`
}

type CheckInChanged struct {
	Header        EventHeader `json:"header"`
	Flight        Flight      `json:"flight"`
	CheckInNumber string      `json:"check_in_number"`
}

type GateChanged struct {
	Header     EventHeader `json:"header"`
	Flight     Flight      `json:"flight"`
	GateNumber string      `json:"gate_number"`
}

// Single notifications resolve one BuyTicket event into exactly one booking
// outcome addressed to the prospective passenger.

type PurchaseConfirmed struct {
	Header     EventHeader `json:"header"`
	TicketInfo BuyTicket   `json:"ticket_info"`
}

type SeatOccupied struct {
	Header     EventHeader `json:"header"`
	TicketInfo BuyTicket   `json:"ticket_info"`
}

type FlightClosed struct {
	Header     EventHeader `json:"header"`
	TicketInfo BuyTicket   `json:"ticket_info"`
}

type IncorrectFlight struct {
	Header     EventHeader `json:"header"`
	TicketInfo BuyTicket   `json:"ticket_info"`
}
