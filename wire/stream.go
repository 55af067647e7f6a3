package wire

import (
	"encoding/json"
	"io"

	"github.com/frostline-lab/stationwatch/weather"
)

// Decoder reads a stream of concatenated or newline-delimited JSON input
// records. It satisfies aggregation.Source, so a record stream can drive a
// processing run directly without materializing the event slice:
//
//	st := aggregation.Process(wire.NewDecoder(r))
type Decoder struct {
	dec *json.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Next decodes the next input record. It returns io.EOF at end of stream; a
// syntactically broken stream or an invalid record surfaces as an
// InvalidInput error.
func (d *Decoder) Next() (weather.Event, error) {
	var raw json.RawMessage
	if err := d.dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, weather.NewInvalidInput(weather.CauseUnknownType,
			"malformed event record: %v", err)
	}
	return DecodeEvent(raw)
}

// Encoder writes output records as newline-delimited JSON.
type Encoder struct {
	enc *json.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

func (e *Encoder) Encode(out weather.Output) error {
	rec, err := toRecord(out)
	if err != nil {
		return err
	}
	return e.enc.Encode(rec)
}
