package aggregation

import (
	"errors"
	"io"

	"github.com/frostline-lab/stationwatch/weather"
)

// Source supplies input events one at a time. Next returns io.EOF when the
// sequence is exhausted; any other error halts processing and is surfaced
// through Stream.Err.
type Source interface {
	Next() (weather.Event, error)
}

// SliceSource adapts an in-memory event slice to a Source.
type SliceSource struct {
	events []weather.Event
	pos    int
}

func NewSliceSource(events []weather.Event) *SliceSource {
	return &SliceSource{events: events}
}

func (s *SliceSource) Next() (weather.Event, error) {
	if s.pos >= len(s.events) {
		return nil, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// Stream is the lazy output sequence of one processing run. Input events are
// pulled and folded only as the consumer asks for output, so a long sequence
// with rare snapshots never buffers output in memory.
//
// Usage follows the sql.Rows idiom:
//
//	st := aggregation.Process(src)
//	for st.Next() {
//		handle(st.Output())
//	}
//	if err := st.Err(); err != nil { ... }
//
// Abandoning the stream before exhaustion is safe; the discarded state is
// never corrupt, just unfinished.
type Stream struct {
	agg  *Aggregator
	src  Source
	out  weather.Output
	err  error
	done bool
}

// Process begins a lazy run over src with a fresh Aggregator. Nothing is
// read from src until the first call to Next.
func Process(src Source) *Stream {
	return &Stream{agg: New(), src: src}
}

// Next advances to the next output record, pulling and folding input events
// until one produces output. It returns false when input is exhausted or an
// event fails; after a failure Err is non-nil and the remaining input is
// left unread (fail-fast — outputs already delivered stand).
func (s *Stream) Next() bool {
	if s.done {
		return false
	}
	for {
		ev, err := s.src.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			s.done = true
			return false
		}

		out, produced, err := s.agg.Apply(ev)
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		if produced {
			s.out = out
			return true
		}
	}
}

// Output returns the record produced by the last successful Next.
func (s *Stream) Output() weather.Output { return s.out }

// Err returns the error that terminated the stream, if any.
func (s *Stream) Err() error { return s.err }

// Collect processes events eagerly and returns every output record. On
// failure it returns the outputs produced before the failing event along
// with the error.
func Collect(events []weather.Event) ([]weather.Output, error) {
	st := Process(NewSliceSource(events))
	var outs []weather.Output
	for st.Next() {
		outs = append(outs, st.Output())
	}
	return outs, st.Err()
}
