// Package wire implements the JSON record shapes for the aggregator's
// boundary. Required-field validation happens here, once, so the domain
// types stay free of optional-field checks. The package performs no I/O of
// its own; Decoder and Encoder operate on caller-supplied streams.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/frostline-lab/stationwatch/weather"
)

const (
	typeSample   = "sample"
	typeControl  = "control"
	typeSnapshot = "snapshot"
	typeReset    = "reset"
)

// inputRecord is the decode envelope for both input variants. Pointer fields
// distinguish absent/null from legitimate zero values.
type inputRecord struct {
	Type        *string          `json:"type"`
	StationName *string          `json:"stationName"`
	Timestamp   *int64           `json:"timestamp"`
	Temperature *decimal.Decimal `json:"temperature"`
	Command     *string          `json:"command"`
}

// DecodeEvent parses one input record. Every failure unwraps to
// weather.ErrInvalidInput with a cause code.
func DecodeEvent(data []byte) (weather.Event, error) {
	var rec inputRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, weather.NewInvalidInput(weather.CauseUnknownType,
			"malformed event record: %v", err)
	}
	return rec.toEvent()
}

func (rec inputRecord) toEvent() (weather.Event, error) {
	if rec.Type == nil {
		return nil, weather.NewInvalidInput(weather.CauseUnknownType,
			"event record missing type")
	}

	switch *rec.Type {
	case typeSample:
		if rec.StationName == nil || rec.Timestamp == nil || rec.Temperature == nil {
			return nil, weather.NewInvalidInput(weather.CauseMissingField,
				"weather sample missing required fields")
		}
		return weather.Sample{
			StationName: *rec.StationName,
			Timestamp:   *rec.Timestamp,
			Temperature: *rec.Temperature,
		}, nil

	case typeControl:
		if rec.Command == nil {
			return nil, weather.NewInvalidInput(weather.CauseUnknownCommand,
				"control record missing command")
		}
		switch *rec.Command {
		case string(weather.CommandSnapshot):
			return weather.Control{Command: weather.CommandSnapshot}, nil
		case string(weather.CommandReset):
			return weather.Control{Command: weather.CommandReset}, nil
		default:
			return nil, weather.NewInvalidInput(weather.CauseUnknownCommand,
				"unknown control command %q", *rec.Command)
		}

	default:
		return nil, weather.NewInvalidInput(weather.CauseUnknownType,
			"unknown message type %q", *rec.Type)
	}
}

// extremaRecord serializes temperatures as bare JSON numbers. decimal's own
// MarshalJSON quotes values as strings, which the output schema does not want.
type extremaRecord struct {
	High json.Number `json:"high"`
	Low  json.Number `json:"low"`
}

type snapshotRecord struct {
	Type     string                   `json:"type"`
	AsOf     int64                    `json:"asOf"`
	Stations map[string]extremaRecord `json:"stations"`
}

type resetRecord struct {
	Type string `json:"type"`
	AsOf int64  `json:"asOf"`
}

// EncodeOutput serializes one output record.
func EncodeOutput(out weather.Output) ([]byte, error) {
	rec, err := toRecord(out)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

func toRecord(out weather.Output) (any, error) {
	switch o := out.(type) {
	case weather.Snapshot:
		stations := make(map[string]extremaRecord, len(o.Stations))
		for name, ext := range o.Stations {
			stations[name] = extremaRecord{
				High: json.Number(ext.High.String()),
				Low:  json.Number(ext.Low.String()),
			}
		}
		return snapshotRecord{Type: typeSnapshot, AsOf: o.AsOf, Stations: stations}, nil
	case weather.Reset:
		return resetRecord{Type: typeReset, AsOf: o.AsOf}, nil
	default:
		return nil, fmt.Errorf("unsupported output type %T", out)
	}
}
