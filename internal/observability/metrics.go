package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the operations core.
type Metrics struct {
	EventsProcessed *prometheus.CounterVec
	BookingOutcomes *prometheus.CounterVec
	EmailsSent      prometheus.Counter
	EmailFailures   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EventsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "airline_events_processed_total",
			Help: "Events applied to the flight registry, by event type",
		}, []string{"event"}),
		BookingOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "airline_booking_outcomes_total",
			Help: "Resolved BuyTicket outcomes, by outcome kind",
		}, []string{"outcome"}),
		EmailsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "airline_emails_sent_total",
			Help: "Emails handed to the mail capability successfully",
		}),
		EmailFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "airline_email_failures_total",
			Help: "Emails dropped after the mail capability failed",
		}),
	}
}
