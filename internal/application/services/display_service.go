package services

import (
	"context"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"airline/internal/config"
	"airline/internal/entities"
	"airline/internal/repository"
)

// DisplayService samples the registry at a fixed interval and republishes
// the "departing within the horizon" view only when it changed. It keeps no
// state besides the last published value.
type DisplayService struct {
	repo     *repository.FlightsRepo
	interval time.Duration
	horizon  time.Duration
	logger   zerolog.Logger

	now func() time.Time

	current atomic.Pointer[entities.InformationDisplay]
	updates chan entities.InformationDisplay
}

func NewDisplayService(repo *repository.FlightsRepo, cfg config.AirlineConfig, logger zerolog.Logger) *DisplayService {
	s := &DisplayService{
		repo:     repo,
		interval: cfg.DisplayUpdateInterval,
		horizon:  cfg.DisplayHorizon,
		logger:   logger,
		now:      time.Now,
		updates:  make(chan entities.InformationDisplay, 1),
	}
	s.current.Store(&entities.InformationDisplay{})
	return s
}

// Current returns the last published display value.
func (s *DisplayService) Current() entities.InformationDisplay {
	return *s.current.Load()
}

// Updates delivers changed display values. Slow consumers miss intermediate
// values instead of stalling the sampling loop.
func (s *DisplayService) Updates() <-chan entities.InformationDisplay {
	return s.updates
}

// Run samples until ctx is cancelled.
func (s *DisplayService) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.refresh()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *DisplayService) refresh() {
	display := s.snapshot()
	if reflect.DeepEqual(display, s.Current()) {
		return
	}

	s.current.Store(&display)
	s.logger.Debug().Int("departing", len(display.Departing)).Msg("display updated")

	select {
	case s.updates <- display:
	default:
		// drop the update for stale consumers, Current is always fresh
	}
}

func (s *DisplayService) snapshot() entities.InformationDisplay {
	currentTime := s.now()
	latest := currentTime.Add(s.horizon)

	var departing []entities.FlightInfo
	for _, flight := range s.repo.List() {
		if flight.DepartureTime.Before(currentTime) || flight.DepartureTime.After(latest) {
			continue
		}
		departing = append(departing, flight.Info())
	}
	return entities.InformationDisplay{Departing: departing}
}
