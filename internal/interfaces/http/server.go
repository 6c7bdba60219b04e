package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"airline/internal/application/services"
)

type Server struct {
	e    *echo.Echo
	addr string

	booking    *services.BookingService
	management *services.ManagementService
	display    *services.DisplayService
}

func NewServer(
	e *echo.Echo,
	addr string,
	booking *services.BookingService,
	management *services.ManagementService,
	display *services.DisplayService,
	metricsHandler http.Handler,
	routerIsRunning func() bool,
	logger zerolog.Logger,
) *Server {
	srv := &Server{
		e:          e,
		addr:       addr,
		booking:    booking,
		management: management,
		display:    display,
	}

	e.GET("/flights", srv.FlightScheduleHandler)
	e.GET("/flights/free-seats", srv.FreeSeatsHandler)
	e.POST("/book-ticket", srv.BookTicketHandler)

	e.POST("/flights", srv.ScheduleFlightHandler)
	e.POST("/flights/delay", srv.DelayFlightHandler)
	e.POST("/flights/cancel", srv.CancelFlightHandler)
	e.POST("/flights/check-in", srv.SetCheckInNumberHandler)
	e.POST("/flights/gate", srv.SetGateNumberHandler)

	e.GET("/display", srv.DisplayHandler)

	e.GET("/metrics", echo.WrapHandler(metricsHandler))
	e.GET("/health", func(c echo.Context) error {
		if !routerIsRunning() {
			return c.String(http.StatusServiceUnavailable, "event router is not running")
		}
		return c.String(http.StatusOK, "ok")
	})

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger.Debug().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("handling request")

			err := next(c)
			if err != nil {
				logger.Error().Err(err).
					Str("path", c.Request().URL.Path).
					Msg("request handling error")
			}

			return err
		}
	})

	return srv
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
