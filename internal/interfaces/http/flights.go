package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"airline/internal/entities"
)

type FlightScheduleResponse struct {
	Flights []entities.FlightInfo `json:"flights"`
}

func (s *Server) FlightScheduleHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, FlightScheduleResponse{
		Flights: s.booking.FlightSchedule(),
	})
}

type FreeSeatsResponse struct {
	Seats []string `json:"seats"`
}

func (s *Server) FreeSeatsHandler(c echo.Context) error {
	flightID := c.QueryParam("flight_id")
	departureTime, err := time.Parse(time.RFC3339, c.QueryParam("departure_time"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid departure_time: %v", err))
	}

	return c.JSON(http.StatusOK, FreeSeatsResponse{
		Seats: s.booking.FreeSeats(flightID, departureTime),
	})
}

func (s *Server) DisplayHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.display.Current())
}
