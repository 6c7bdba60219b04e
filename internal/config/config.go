package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// AirlineConfig is read once at startup and never mutated afterwards.
// All registration/boarding values are offsets before the actual departure.
type AirlineConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// TicketSaleEnd is how long before the scheduled departure ticket sales
	// close.
	TicketSaleEnd       time.Duration `env:"TICKET_SALE_END" envDefault:"30m"`
	RegistrationOpening time.Duration `env:"REGISTRATION_OPENING" envDefault:"2h"`
	RegistrationClosing time.Duration `env:"REGISTRATION_CLOSING" envDefault:"30m"`
	BoardingOpening     time.Duration `env:"BOARDING_OPENING" envDefault:"1h"`
	BoardingClosing     time.Duration `env:"BOARDING_CLOSING" envDefault:"15m"`

	DisplayUpdateInterval time.Duration `env:"DISPLAY_UPDATE_INTERVAL" envDefault:"1m"`
	DisplayHorizon        time.Duration `env:"DISPLAY_HORIZON" envDefault:"24h"`

	AudioAlertsInterval time.Duration `env:"AUDIO_ALERTS_INTERVAL" envDefault:"1m"`
	AudioAlertWindow    time.Duration `env:"AUDIO_ALERT_WINDOW" envDefault:"3m"`

	// EmailSendRetries is the number of extra attempts per message after a
	// failed send. With the default of 0 a failed send is logged and dropped.
	EmailSendRetries int `env:"EMAIL_SEND_RETRIES" envDefault:"0"`

	// MessageBuffer bounds each in-process topic. Publishing blocks once the
	// buffer is full, it never deadlocks against the consuming task.
	MessageBuffer int `env:"MESSAGE_BUFFER" envDefault:"1024"`
}

func Load() (AirlineConfig, error) {
	var cfg AirlineConfig
	if err := env.Parse(&cfg); err != nil {
		return AirlineConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AirlineConfig{}, err
	}
	return cfg, nil
}

func (c AirlineConfig) Validate() error {
	for name, d := range map[string]time.Duration{
		"TICKET_SALE_END":         c.TicketSaleEnd,
		"DISPLAY_UPDATE_INTERVAL": c.DisplayUpdateInterval,
		"DISPLAY_HORIZON":         c.DisplayHorizon,
		"AUDIO_ALERTS_INTERVAL":   c.AudioAlertsInterval,
		"AUDIO_ALERT_WINDOW":      c.AudioAlertWindow,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.MessageBuffer <= 0 {
		return fmt.Errorf("MESSAGE_BUFFER must be positive, got %d", c.MessageBuffer)
	}
	if c.EmailSendRetries < 0 {
		return fmt.Errorf("EMAIL_SEND_RETRIES must not be negative, got %d", c.EmailSendRetries)
	}
	return nil
}
