package app

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"airline/internal/application/services"
	"airline/internal/config"
	"airline/internal/interfaces/events"
	httpiface "airline/internal/interfaces/http"
	"airline/internal/interfaces/notifications"
	"airline/internal/observability"
	"airline/internal/repository"
)

// App wires the operations core: the single ordered command stream, the
// flight registry with its one writer, the two notification dispatchers and
// the read projections.
type App struct {
	logger zerolog.Logger
	router *message.Router
	pubsub *gochannel.GoChannel
	srv    *httpiface.Server

	booking     *services.BookingService
	management  *services.ManagementService
	display     *services.DisplayService
	audioAlerts *services.AudioAlertsService
}

func NewApp(
	logger zerolog.Logger,
	emailSender notifications.EmailSender,
	cfg config.AirlineConfig,
) (*App, error) {
	watermillLogger := observability.NewWatermillLogger(logger)

	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: int64(cfg.MessageBuffer),
	}, watermillLogger)

	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}
	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware)
	router.AddMiddleware(events.LoggingMiddleware(logger))

	promRegistry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(promRegistry)

	flightsRepo := repository.NewFlightsRepo()

	eventBus, err := events.NewEventBus(pubsub, watermillLogger)
	if err != nil {
		return nil, err
	}
	massBus, err := events.NewMassNotificationBus(pubsub, watermillLogger)
	if err != nil {
		return nil, err
	}
	singleBus, err := events.NewSingleNotificationBus(pubsub, watermillLogger)
	if err != nil {
		return nil, err
	}

	flightOps := services.NewFlightOpsService(flightsRepo, massBus, singleBus, cfg, metrics, logger)
	booking := services.NewBookingService(flightsRepo, eventBus, cfg)
	management := services.NewManagementService(eventBus)
	display := services.NewDisplayService(flightsRepo, cfg, logger)
	audioAlerts := services.NewAudioAlertsService(flightsRepo, cfg)

	massDispatcher := notifications.NewMassDispatcher(emailSender, cfg.EmailSendRetries, metrics, logger)
	singleDispatcher := notifications.NewSingleDispatcher(emailSender, cfg.EmailSendRetries, metrics, logger)

	processor, err := events.NewEventProcessor(router, pubsub, watermillLogger)
	if err != nil {
		return nil, err
	}
	if err := processor.AddHandlersGroup(events.FlightOpsGroup, events.FlightOpsHandlers(flightOps)...); err != nil {
		return nil, err
	}
	if err := processor.AddHandlersGroup(events.MassNotificationsGroup, massDispatcher.Handlers()...); err != nil {
		return nil, err
	}
	if err := processor.AddHandlersGroup(events.SingleNotificationsGroup, singleDispatcher.Handlers()...); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	srv := httpiface.NewServer(
		e,
		cfg.HTTPAddr,
		booking,
		management,
		display,
		promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
		router.IsRunning,
		logger,
	)

	return &App{
		logger:      logger,
		router:      router,
		pubsub:      pubsub,
		srv:         srv,
		booking:     booking,
		management:  management,
		display:     display,
		audioAlerts: audioAlerts,
	}, nil
}

// Run blocks until ctx is cancelled, then tears the whole engine down.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Msg("starting event router")
		return a.router.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("event router is running, starting http server")
		return a.srv.Start()
	})

	g.Go(func() error {
		<-a.router.Running()
		err := a.display.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()

		if err := a.srv.Stop(context.Background()); err != nil {
			a.logger.Err(err).Msg("error stopping http server")
		}
		if err := a.pubsub.Close(); err != nil {
			a.logger.Err(err).Msg("error closing pubsub")
		}

		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Running is closed once the event router consumes from all topics. Commands
// issued before that may be dropped by the in-memory transport.
func (a *App) Running() chan struct{} {
	return a.router.Running()
}

func (a *App) Booking() *services.BookingService {
	return a.booking
}

func (a *App) Management() *services.ManagementService {
	return a.management
}

func (a *App) Display() *services.DisplayService {
	return a.display
}

func (a *App) AudioAlerts() *services.AudioAlertsService {
	return a.audioAlerts
}
