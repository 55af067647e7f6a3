package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/frostline-lab/stationwatch/weather"
)

// Aggregator folds an ordered event sequence into per-station temperature
// extrema and answers snapshot/reset commands against that state.
//
// One Aggregator owns one state: it is not safe for concurrent use, and a
// fresh instance must be constructed per input sequence. State never outlives
// the sequence — there is no persistence.
type Aggregator struct {
	stations map[string]*stationState
	// order records station insertion order so snapshot construction is
	// deterministic per run.
	order []string

	// asOf tracks max(sample timestamps seen), not the most recent arrival.
	// It survives resets; asOfValid is false until the first sample ever.
	asOf      int64
	asOfValid bool
}

// stationState is the extrema accumulator for one station. An entry is
// created together with its first sample, so initialized is normally true
// for every stored entry; snapshot still filters uninitialized entries
// rather than reporting them.
type stationState struct {
	high, low   decimal.Decimal
	initialized bool
}

func (st *stationState) observe(t decimal.Decimal) {
	if !st.initialized {
		st.high, st.low, st.initialized = t, t, true
		return
	}
	if t.GreaterThan(st.high) {
		st.high = t
	}
	if t.LessThan(st.low) {
		st.low = t
	}
}

// New returns an Aggregator with empty state.
func New() *Aggregator {
	return &Aggregator{stations: make(map[string]*stationState)}
}

// Apply folds one event into the state. Each event produces at most one
// output record; produced is false when the event yields none (samples
// never yield, snapshots and resets may be suppressed).
//
// A returned error is always an InvalidInput: the event was malformed and
// had no effect on state. Callers must stop feeding the sequence after an
// error rather than skip the bad event.
func (a *Aggregator) Apply(ev weather.Event) (out weather.Output, produced bool, err error) {
	switch e := ev.(type) {
	case weather.Sample:
		return nil, false, a.applySample(e)
	case weather.Control:
		switch e.Command {
		case weather.CommandSnapshot:
			out, produced = a.snapshot()
			return out, produced, nil
		case weather.CommandReset:
			out, produced = a.reset()
			return out, produced, nil
		default:
			return nil, false, weather.NewInvalidInput(weather.CauseUnknownCommand,
				"unknown control command %q", e.Command)
		}
	case nil:
		return nil, false, weather.NewInvalidInput(weather.CauseUnknownType, "missing event")
	default:
		// Event is sealed, so this is unreachable today; kept so a new
		// variant cannot silently fall through the fold.
		return nil, false, weather.NewInvalidInput(weather.CauseUnknownType,
			"unknown message type %T", ev)
	}
}

func (a *Aggregator) applySample(s weather.Sample) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if !a.asOfValid || s.Timestamp > a.asOf {
		a.asOf = s.Timestamp
		a.asOfValid = true
	}

	st, ok := a.stations[s.StationName]
	if !ok {
		st = &stationState{}
		a.stations[s.StationName] = st
		a.order = append(a.order, s.StationName)
	}
	st.observe(s.Temperature)
	return nil
}

// snapshot builds a value copy of all initialized station extrema. It is
// suppressed entirely when no sample has ever been seen or when every
// station was cleared by a reset — an empty snapshot is never emitted.
func (a *Aggregator) snapshot() (weather.Output, bool) {
	if !a.asOfValid {
		return nil, false
	}

	stations := make(map[string]weather.Extrema, len(a.stations))
	for _, name := range a.order {
		st := a.stations[name]
		if st == nil || !st.initialized {
			continue
		}
		stations[name] = weather.Extrema{High: st.high, Low: st.low}
	}
	if len(stations) == 0 {
		return nil, false
	}
	return weather.Snapshot{AsOf: a.asOf, Stations: stations}, true
}

// reset clears all station extrema but keeps the latest-timestamp cursor, so
// subsequent output keeps referencing the last known timestamp until a new
// sample arrives. Acknowledged only once a sample has ever been seen.
func (a *Aggregator) reset() (weather.Output, bool) {
	a.stations = make(map[string]*stationState)
	a.order = a.order[:0]

	if !a.asOfValid {
		return nil, false
	}
	return weather.Reset{AsOf: a.asOf}, true
}
