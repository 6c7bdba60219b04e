package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type BookTicketRequest struct {
	FlightID       string    `json:"flight_id"`
	DepartureTime  time.Time `json:"departure_time"`
	SeatNo         string    `json:"seat_no"`
	PassengerID    string    `json:"passenger_id"`
	PassengerName  string    `json:"passenger_name"`
	PassengerEmail string    `json:"passenger_email"`
}

// BookTicketHandler accepts the purchase command and returns immediately.
// The outcome arrives by email or by re-querying free seats.
func (s *Server) BookTicketHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var request BookTicketRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	err := s.booking.BuyTicket(
		ctx,
		request.FlightID,
		request.DepartureTime,
		request.SeatNo,
		request.PassengerID,
		request.PassengerName,
		request.PassengerEmail,
	)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}
