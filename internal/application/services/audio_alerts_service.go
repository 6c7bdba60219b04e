package services

import (
	"context"
	"time"

	"airline/internal/config"
	"airline/internal/entities"
	"airline/internal/repository"
)

// AudioAlertsService produces the airport audio feed: on every poll tick it
// scans the registry and emits an alert for each flight whose actual
// departure currently falls inside one of the four announcement windows.
// Opening windows start at the configured offset before departure and last
// for the alert window; closing windows end at the offset.
type AudioAlertsService struct {
	repo   *repository.FlightsRepo
	config config.AirlineConfig

	now func() time.Time
}

func NewAudioAlertsService(repo *repository.FlightsRepo, cfg config.AirlineConfig) *AudioAlertsService {
	return &AudioAlertsService{
		repo:   repo,
		config: cfg,
		now:    time.Now,
	}
}

// Alerts starts a fresh scan loop and returns its feed. The feed is infinite
// until ctx is cancelled, and every call produces an independent, restartable
// sequence.
func (s *AudioAlertsService) Alerts(ctx context.Context) <-chan entities.AudioAlert {
	out := make(chan entities.AudioAlert)

	go func() {
		defer close(out)

		ticker := time.NewTicker(s.config.AudioAlertsInterval)
		defer ticker.Stop()

		for {
			for _, alert := range s.scan() {
				select {
				case <-ctx.Done():
					return
				case out <- alert:
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}

func (s *AudioAlertsService) scan() []entities.AudioAlert {
	window := s.config.AudioAlertWindow

	var alerts []entities.AudioAlert
	for _, flight := range s.repo.List() {
		currentTime := s.now()
		departure := flight.ActualDepartureTime

		registrationOpens := departure.Add(-s.config.RegistrationOpening)
		registrationCloses := departure.Add(-s.config.RegistrationClosing)
		boardingOpens := departure.Add(-s.config.BoardingOpening)
		boardingCloses := departure.Add(-s.config.BoardingClosing)

		if within(currentTime, registrationOpens, registrationOpens.Add(window)) {
			alerts = append(alerts, entities.AudioAlert{
				Kind:          entities.RegistrationOpen,
				FlightID:      flight.FlightID,
				CheckInNumber: flight.CheckInNumber,
			})
		}
		if within(currentTime, registrationCloses.Add(-window), registrationCloses) {
			alerts = append(alerts, entities.AudioAlert{
				Kind:          entities.RegistrationClosing,
				FlightID:      flight.FlightID,
				CheckInNumber: flight.CheckInNumber,
			})
		}
		if within(currentTime, boardingOpens, boardingOpens.Add(window)) {
			alerts = append(alerts, entities.AudioAlert{
				Kind:       entities.BoardingOpened,
				FlightID:   flight.FlightID,
				GateNumber: flight.GateNumber,
			})
		}
		if within(currentTime, boardingCloses.Add(-window), boardingCloses) {
			alerts = append(alerts, entities.AudioAlert{
				Kind:       entities.BoardingClosing,
				FlightID:   flight.FlightID,
				GateNumber: flight.GateNumber,
			})
		}
	}
	return alerts
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
