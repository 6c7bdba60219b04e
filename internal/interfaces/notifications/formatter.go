package notifications

import (
	"fmt"
	"time"

	"airline/internal/entities"
)

// Message formatting is pure and deterministic: no I/O and no failure mode.
// Only the final send can fail.

func FormatPurchaseConfirmed(ticketInfo entities.BuyTicket) string {
	return fmt.Sprintf(
		"Dear %s. You have successfully purchased a ticket for flight %s departing at %s. Your seat number is %s.",
		ticketInfo.PassengerName, ticketInfo.FlightID, formatTime(ticketInfo.DepartureTime), ticketInfo.SeatNo,
	)
}

func FormatSeatOccupied(ticketInfo entities.BuyTicket) string {
	return fmt.Sprintf(
		"Dear %s. We are sorry, but the seat %s for flight %s departing at %s is already taken.",
		ticketInfo.PassengerName, ticketInfo.SeatNo, ticketInfo.FlightID, formatTime(ticketInfo.DepartureTime),
	)
}

func FormatFlightClosed(ticketInfo entities.BuyTicket) string {
	return fmt.Sprintf(
		"Dear %s. We are sorry, but the flight %s departing at %s is already closed.",
		ticketInfo.PassengerName, ticketInfo.FlightID, formatTime(ticketInfo.DepartureTime),
	)
}

func FormatIncorrectFlight(ticketInfo entities.BuyTicket) string {
	return fmt.Sprintf(
		"Dear %s. We are sorry, but the flight %s departing at %s with seat %s does not exist.",
		ticketInfo.PassengerName, ticketInfo.FlightID, formatTime(ticketInfo.DepartureTime), ticketInfo.SeatNo,
	)
}

func FormatFlightDelayed(ticket entities.Ticket, flight entities.Flight, actualDepartureTime time.Time) string {
	return fmt.Sprintf(
		"Dear %s. Unfortunately, your flight %s delayed from %s to %s.",
		ticket.PassengerName, flight.FlightID, formatTime(flight.DepartureTime), formatTime(actualDepartureTime),
	)
}

func FormatFlightCancelled(ticket entities.Ticket, flight entities.Flight) string {
	return fmt.Sprintf(
		"Dear %s. Unfortunately, your flight %s on %s has been cancelled.",
		ticket.PassengerName, flight.FlightID, formatTime(flight.DepartureTime),
	)
}

func FormatCheckInChanged(ticket entities.Ticket, flight entities.Flight, checkInNumber string) string {
	return fmt.Sprintf(
		"Dear %s. Please note that your flight %s on %s check-in number has changed to %s.",
		ticket.PassengerName, flight.FlightID, formatTime(flight.DepartureTime), checkInNumber,
	)
}

func FormatGateChanged(ticket entities.Ticket, flight entities.Flight, gateNumber string) string {
	return fmt.Sprintf(
		"Dear %s. Please note that your flight %s on %s gate number has changed to %s.",
		ticket.PassengerName, flight.FlightID, formatTime(flight.DepartureTime), gateNumber,
	)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
