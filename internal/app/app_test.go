package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"airline/internal/app"
	"airline/internal/config"
	"airline/internal/entities"
)

const emailTimeout = 5 * time.Second

type emailMessage struct {
	recipient string
	text      string
}

// channelEmailSender hands every outgoing email to the test.
type channelEmailSender struct {
	messages chan emailMessage
}

func (s *channelEmailSender) Send(ctx context.Context, recipient, text string) error {
	select {
	case s.messages <- emailMessage{recipient: recipient, text: text}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type AppTestSuite struct {
	suite.Suite

	app    *app.App
	sender *channelEmailSender
	cancel context.CancelFunc
	done   chan error
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	cfg := config.AirlineConfig{
		HTTPAddr:              "127.0.0.1:0",
		TicketSaleEnd:         30 * time.Minute,
		RegistrationOpening:   2 * time.Hour,
		RegistrationClosing:   30 * time.Minute,
		BoardingOpening:       time.Hour,
		BoardingClosing:       15 * time.Minute,
		DisplayUpdateInterval: 10 * time.Millisecond,
		DisplayHorizon:        24 * time.Hour,
		AudioAlertsInterval:   10 * time.Millisecond,
		AudioAlertWindow:      3 * time.Minute,
		MessageBuffer:         64,
	}

	s.sender = &channelEmailSender{messages: make(chan emailMessage, 64)}

	application, err := app.NewApp(zerolog.Nop(), s.sender, cfg)
	require.NoError(s.T(), err)
	s.app = application

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan error, 1)
	go func() {
		s.done <- s.app.Run(ctx)
	}()

	select {
	case <-s.app.Running():
	case <-time.After(emailTimeout):
		s.T().Fatal("event router did not start")
	}
}

func (s *AppTestSuite) TearDownTest() {
	s.cancel()
	select {
	case err := <-s.done:
		require.NoError(s.T(), err)
	case <-time.After(emailTimeout):
		s.T().Fatal("application did not shut down")
	}
}

func (s *AppTestSuite) awaitEmail() emailMessage {
	s.T().Helper()
	select {
	case msg := <-s.sender.messages:
		return msg
	case <-time.After(emailTimeout):
		s.T().Fatal("expected an email")
		return emailMessage{}
	}
}

func (s *AppTestSuite) TestBookingLifecycle() {
	t := s.T()
	ctx := context.Background()

	booking := s.app.Booking()
	management := s.app.Management()
	display := s.app.Display()

	flightID := "111"
	departure := time.Now().Add(time.Hour).Truncate(time.Second)
	plane := entities.Plane{Name: "B737", Seats: []string{"1A", "1B", "2A", "2B"}}

	// scheduling twice leaves one flight
	require.NoError(t, management.ScheduleFlight(ctx, flightID, departure, plane))
	require.NoError(t, management.ScheduleFlight(ctx, flightID, departure, plane))

	// the purchase confirmation proves all earlier events were applied
	require.NoError(t, booking.BuyTicket(ctx, flightID, departure, "1A", "1", "Alice", "alice@example.com"))
	email := s.awaitEmail()
	require.Equal(t, "alice@example.com", email.recipient)
	require.Contains(t, email.text, "successfully purchased")
	require.Contains(t, email.text, flightID)
	require.Contains(t, email.text, "1A")

	require.Len(t, booking.FlightSchedule(), 1)
	require.Equal(t, []string{"1B", "2A", "2B"}, booking.FreeSeats(flightID, departure))

	// second purchase of the same seat is rejected
	require.NoError(t, booking.BuyTicket(ctx, flightID, departure, "1A", "2", "Bob", "bob@example.com"))
	email = s.awaitEmail()
	require.Equal(t, "bob@example.com", email.recipient)
	require.Contains(t, email.text, "already taken")
	require.Contains(t, email.text, "1A")

	// unknown flight
	require.NoError(t, booking.BuyTicket(ctx, "999", departure, "2A", "3", "Carol", "carol@example.com"))
	email = s.awaitEmail()
	require.Equal(t, "carol@example.com", email.recipient)
	require.Contains(t, email.text, "does not exist")
	require.Contains(t, email.text, "999")

	// check-in change notifies the ticket holder
	require.NoError(t, management.SetCheckInNumber(ctx, flightID, departure, "C1"))
	email = s.awaitEmail()
	require.Equal(t, "alice@example.com", email.recipient)
	require.Contains(t, email.text, "check-in number has changed")
	require.Contains(t, email.text, "C1")

	require.Eventually(t, func() bool {
		departing := display.Current().Departing
		return len(departing) == 1 && departing[0].CheckInNumber == "C1"
	}, emailTimeout, 10*time.Millisecond)

	// delay notifies the ticket holder with old and new times
	delayedTo := departure.Add(time.Hour)
	require.NoError(t, management.DelayFlight(ctx, flightID, departure, delayedTo))
	email = s.awaitEmail()
	require.Equal(t, "alice@example.com", email.recipient)
	require.Contains(t, email.text, "delayed")

	// cancellation notifies the ticket holder and closes the flight for sale
	require.NoError(t, management.CancelFlight(ctx, flightID, departure))
	email = s.awaitEmail()
	require.Equal(t, "alice@example.com", email.recipient)
	require.Contains(t, email.text, "cancelled")

	require.Eventually(t, func() bool {
		return len(booking.FlightSchedule()) == 0
	}, emailTimeout, 10*time.Millisecond)

	// buying on a cancelled flight is an incorrect flight
	require.NoError(t, booking.BuyTicket(ctx, flightID, departure, "2B", "4", "Dave", "dave@example.com"))
	email = s.awaitEmail()
	require.Equal(t, "dave@example.com", email.recipient)
	require.Contains(t, email.text, "does not exist")
}

func (s *AppTestSuite) TestClosedFlight() {
	t := s.T()
	ctx := context.Background()

	flightID := "222"
	// departs in 10 minutes, sales closed 30 minutes before departure
	departure := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	plane := entities.Plane{Name: "A320", Seats: []string{"1A"}}

	require.NoError(t, s.app.Management().ScheduleFlight(ctx, flightID, departure, plane))
	require.NoError(t, s.app.Booking().BuyTicket(ctx, flightID, departure, "1A", "1", "Alice", "alice@example.com"))

	email := s.awaitEmail()
	require.Equal(t, "alice@example.com", email.recipient)
	require.Contains(t, email.text, "already closed")
	require.Contains(t, email.text, flightID)
}

func (s *AppTestSuite) TestAudioAlertsFeed() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flightID := "333"
	// registration opens two hours before departure, which is right now
	departure := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	plane := entities.Plane{Name: "A320", Seats: []string{"1A"}}

	require.NoError(t, s.app.Management().ScheduleFlight(ctx, flightID, departure, plane))
	require.Eventually(t, func() bool {
		return len(s.app.Booking().FlightSchedule()) == 1
	}, emailTimeout, 10*time.Millisecond)

	feed := s.app.AudioAlerts().Alerts(ctx)
	select {
	case alert := <-feed:
		require.Equal(t, entities.RegistrationOpen, alert.Kind)
		require.Equal(t, flightID, alert.FlightID)
	case <-time.After(emailTimeout):
		t.Fatal("expected a registration-open alert")
	}
}
