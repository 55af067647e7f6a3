package weather

import (
	"github.com/shopspring/decimal"
)

// Output is one record produced by processing: either a Snapshot or a Reset.
// Sealed, like Event.
type Output interface {
	isOutput()
}

// Extrema is the running high/low pair reported for one station. A station
// appears in output only after at least one sample, so High >= Low always
// holds here.
type Extrema struct {
	High decimal.Decimal
	Low  decimal.Decimal
}

// Snapshot is a point-in-time report of every station's extrema.
// It is a value copy: later samples do not retroactively change an already
// emitted snapshot.
type Snapshot struct {
	// AsOf is the maximum sample timestamp seen so far (epoch millis),
	// which may predate the snapshot request itself.
	AsOf int64

	// Stations maps station name to its extrema. Never empty: a snapshot
	// that would report nothing is suppressed instead of emitted.
	Stations map[string]Extrema
}

func (Snapshot) isOutput() {}

// Reset acknowledges that all station extrema were cleared.
type Reset struct {
	// AsOf is the latest-timestamp cursor at the time of the reset. The
	// cursor survives resets, so consecutive resets report the same AsOf
	// until a new sample arrives.
	AsOf int64
}

func (Reset) isOutput() {}
