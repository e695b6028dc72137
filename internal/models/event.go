package models

import "time"

// Location is a device position reported by the browser.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventKind distinguishes the two demo actions.
type EventKind string

const (
	EventDispatch  EventKind = "dispatch"
	EventEmergency EventKind = "emergency"
)

// Event is published to the configured notifiers when a demo action fires.
type Event struct {
	ID           string    `json:"id"`
	Kind         EventKind `json:"kind"`
	AccidentType string    `json:"accidentType,omitempty"`
	Location     *Location `json:"location,omitempty"`
	Reporter     string    `json:"reporter,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
