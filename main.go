package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"airline/internal/app"
	"airline/internal/config"
	"airline/internal/interfaces/notifications"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	application, err := app.NewApp(logger, notifications.NewLogEmailSender(logger), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-application.Running()
		for alert := range application.AudioAlerts().Alerts(ctx) {
			logger.Info().
				Str("kind", string(alert.Kind)).
				Str("flight_id", alert.FlightID).
				Str("check_in_number", alert.CheckInNumber).
				Str("gate_number", alert.GateNumber).
				Msg("audio alert")
		}
	}()

	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("application stopped with error")
	}

	logger.Info().Msg("application stopped")
}
