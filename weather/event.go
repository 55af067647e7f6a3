package weather

import (
	"github.com/shopspring/decimal"
)

// Event is one input record in a processing sequence: either a Sample or a
// Control. The interface is sealed so the aggregator's event switch stays
// exhaustive; new variants must be added here.
type Event interface {
	isEvent()
}

// Sample is a single temperature reading from a station.
//
// Temperatures are decimals rather than floats so extrema comparisons are
// exact and there is no NaN or infinity to guard against. Timestamps are
// epoch milliseconds; samples may arrive out of timestamp order.
type Sample struct {
	// StationName identifies the reporting station. It is the aggregation
	// key and is REQUIRED.
	StationName string

	// Timestamp is when the reading was taken (epoch millis, client clock).
	Timestamp int64

	// Temperature is the reading itself.
	Temperature decimal.Decimal
}

func (Sample) isEvent() {}

// Validate checks the sample's required attributes. A missing timestamp or
// temperature is only observable at the wire boundary (see the wire
// package); in struct form the zero values are legitimate readings.
func (s Sample) Validate() error {
	if s.StationName == "" {
		return NewInvalidInput(CauseMissingField, "weather sample missing station name")
	}
	return nil
}

// Command is a control instruction to the aggregator.
type Command string

const (
	// CommandSnapshot requests a point-in-time report of all station extrema.
	CommandSnapshot Command = "snapshot"

	// CommandReset clears all station extrema, preserving the latest-timestamp
	// cursor.
	CommandReset Command = "reset"
)

// Control carries a command rather than data.
type Control struct {
	Command Command
}

func (Control) isEvent() {}
