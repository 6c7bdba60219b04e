package services

import (
	"context"
	"time"

	"airline/internal/entities"
)

// ManagementService is the staff-facing command surface. It only emits
// events: validation happens in the event processor, and callers do not
// learn the outcome synchronously.
type ManagementService struct {
	events EventPublisher
}

func NewManagementService(events EventPublisher) *ManagementService {
	return &ManagementService{events: events}
}

func (s *ManagementService) ScheduleFlight(ctx context.Context, flightID string, departureTime time.Time, plane entities.Plane) error {
	return s.events.Publish(ctx, entities.ScheduleFlight{
		Header:        entities.NewEventHeader(),
		FlightID:      flightID,
		DepartureTime: departureTime,
		Plane:         plane,
	})
}

func (s *ManagementService) DelayFlight(ctx context.Context, flightID string, departureTime, actualDepartureTime time.Time) error {
	return s.events.Publish(ctx, entities.DelayFlight{
		Header:              entities.NewEventHeader(),
		FlightID:            flightID,
		DepartureTime:       departureTime,
		ActualDepartureTime: actualDepartureTime,
	})
}

func (s *ManagementService) CancelFlight(ctx context.Context, flightID string, departureTime time.Time) error {
	return s.events.Publish(ctx, entities.CancelFlight{
		Header:        entities.NewEventHeader(),
		FlightID:      flightID,
		DepartureTime: departureTime,
	})
}

func (s *ManagementService) SetCheckInNumber(ctx context.Context, flightID string, departureTime time.Time, checkInNumber string) error {
	return s.events.Publish(ctx, entities.SetCheckInNumber{
		Header:        entities.NewEventHeader(),
		FlightID:      flightID,
		DepartureTime: departureTime,
		CheckInNumber: checkInNumber,
	})
}

func (s *ManagementService) SetGateNumber(ctx context.Context, flightID string, departureTime time.Time, gateNumber string) error {
	return s.events.Publish(ctx, entities.SetGateNumber{
		Header:        entities.NewEventHeader(),
		FlightID:      flightID,
		DepartureTime: departureTime,
		GateNumber:    gateNumber,
	})
}
