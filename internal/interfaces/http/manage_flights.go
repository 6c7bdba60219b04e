package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"airline/internal/entities"
)

// Management endpoints are fire-and-forget: they return 202 Accepted once
// the event is in the stream, without waiting for it to be applied.

type ScheduleFlightRequest struct {
	FlightID      string         `json:"flight_id"`
	DepartureTime time.Time      `json:"departure_time"`
	Plane         entities.Plane `json:"plane"`
}

func (s *Server) ScheduleFlightHandler(c echo.Context) error {
	var request ScheduleFlightRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	err := s.management.ScheduleFlight(c.Request().Context(), request.FlightID, request.DepartureTime, request.Plane)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}

type DelayFlightRequest struct {
	FlightID            string    `json:"flight_id"`
	DepartureTime       time.Time `json:"departure_time"`
	ActualDepartureTime time.Time `json:"actual_departure_time"`
}

func (s *Server) DelayFlightHandler(c echo.Context) error {
	var request DelayFlightRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	err := s.management.DelayFlight(c.Request().Context(), request.FlightID, request.DepartureTime, request.ActualDepartureTime)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}

type CancelFlightRequest struct {
	FlightID      string    `json:"flight_id"`
	DepartureTime time.Time `json:"departure_time"`
}

func (s *Server) CancelFlightHandler(c echo.Context) error {
	var request CancelFlightRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	err := s.management.CancelFlight(c.Request().Context(), request.FlightID, request.DepartureTime)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}

type SetCheckInNumberRequest struct {
	FlightID      string    `json:"flight_id"`
	DepartureTime time.Time `json:"departure_time"`
	CheckInNumber string    `json:"check_in_number"`
}

func (s *Server) SetCheckInNumberHandler(c echo.Context) error {
	var request SetCheckInNumberRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	err := s.management.SetCheckInNumber(c.Request().Context(), request.FlightID, request.DepartureTime, request.CheckInNumber)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}

type SetGateNumberRequest struct {
	FlightID      string    `json:"flight_id"`
	DepartureTime time.Time `json:"departure_time"`
	GateNumber    string    `json:"gate_number"`
}

func (s *Server) SetGateNumberHandler(c echo.Context) error {
	var request SetGateNumberRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	err := s.management.SetGateNumber(c.Request().Context(), request.FlightID, request.DepartureTime, request.GateNumber)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}
