package entities

type AudioAlertKind string

const (
	RegistrationOpen    AudioAlertKind = "registration_open"
	RegistrationClosing AudioAlertKind = "registration_closing"
	BoardingOpened      AudioAlertKind = "boarding_opened"
	BoardingClosing     AudioAlertKind = "boarding_closing"
)

// AudioAlert is a single announcement for the airport audio feed.
// CheckInNumber is set for registration alerts, GateNumber for boarding ones.
type AudioAlert struct {
	Kind          AudioAlertKind `json:"kind"`
	FlightID      string         `json:"flight_id"`
	CheckInNumber string         `json:"check_in_number,omitempty"`
	GateNumber    string         `json:"gate_number,omitempty"`
}
