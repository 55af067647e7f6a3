package wire

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/frostline-lab/stationwatch/weather"
)

func TestDecodeSample(t *testing.T) {
	ev, err := DecodeEvent([]byte(`{
		"type": "sample",
		"stationName": "Foster Weather Station",
		"timestamp": 1672531200000,
		"temperature": 37.1
	}`))
	require.NoError(t, err)

	s, ok := ev.(weather.Sample)
	require.True(t, ok)
	require.Equal(t, "Foster Weather Station", s.StationName)
	require.Equal(t, int64(1672531200000), s.Timestamp)
	require.True(t, decimal.NewFromFloat(37.1).Equal(s.Temperature))
}

func TestDecodeSampleMissingFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no stationName", data: `{"type":"sample","timestamp":1000,"temperature":37.1}`},
		{name: "no timestamp", data: `{"type":"sample","stationName":"Foster","temperature":37.1}`},
		{name: "no temperature", data: `{"type":"sample","stationName":"Foster","timestamp":1000}`},
		{name: "null stationName", data: `{"type":"sample","stationName":null,"timestamp":1000,"temperature":37.1}`},
		{name: "null timestamp", data: `{"type":"sample","stationName":"Foster","timestamp":null,"temperature":37.1}`},
		{name: "null temperature", data: `{"type":"sample","stationName":"Foster","timestamp":1000,"temperature":null}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := DecodeEvent([]byte(tc.data))
			require.Nil(t, ev)
			require.ErrorIs(t, err, weather.ErrInvalidInput)
			require.Equal(t, weather.CauseMissingField, weather.CauseOf(err))
		})
	}
}

func TestDecodeControl(t *testing.T) {
	ev, err := DecodeEvent([]byte(`{"type":"control","command":"snapshot"}`))
	require.NoError(t, err)
	require.Equal(t, weather.Control{Command: weather.CommandSnapshot}, ev)

	ev, err = DecodeEvent([]byte(`{"type":"control","command":"reset"}`))
	require.NoError(t, err)
	require.Equal(t, weather.Control{Command: weather.CommandReset}, ev)
}

func TestDecodeInvalidRecords(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantCause weather.Cause
	}{
		{name: "unknown command", data: `{"type":"control","command":"flush"}`, wantCause: weather.CauseUnknownCommand},
		{name: "missing command", data: `{"type":"control"}`, wantCause: weather.CauseUnknownCommand},
		{name: "unknown type", data: `{"type":"telemetry"}`, wantCause: weather.CauseUnknownType},
		{name: "missing type", data: `{"stationName":"Foster"}`, wantCause: weather.CauseUnknownType},
		{name: "not json", data: `{{{`, wantCause: weather.CauseUnknownType},
		{name: "wrong field kind", data: `{"type":"sample","stationName":"Foster","timestamp":"soon","temperature":37.1}`, wantCause: weather.CauseUnknownType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := DecodeEvent([]byte(tc.data))
			require.Nil(t, ev)
			require.ErrorIs(t, err, weather.ErrInvalidInput)
			require.Equal(t, tc.wantCause, weather.CauseOf(err))
		})
	}
}

func TestEncodeSnapshot(t *testing.T) {
	data, err := EncodeOutput(weather.Snapshot{
		AsOf: 1672531260000,
		Stations: map[string]weather.Extrema{
			"Foster Weather Station":     {High: decimal.NewFromFloat(37.1), Low: decimal.NewFromFloat(12.3)},
			"Oak Street Weather Station": {High: decimal.NewFromFloat(42.5), Low: decimal.NewFromFloat(42.5)},
		},
	})
	require.NoError(t, err)

	// Temperatures must serialize as bare numbers, not quoted strings;
	// JSONEq would reject "37.1" where 37.1 is expected.
	require.JSONEq(t, `{
		"type": "snapshot",
		"asOf": 1672531260000,
		"stations": {
			"Foster Weather Station": {"high": 37.1, "low": 12.3},
			"Oak Street Weather Station": {"high": 42.5, "low": 42.5}
		}
	}`, string(data))
}

func TestEncodeReset(t *testing.T) {
	data, err := EncodeOutput(weather.Reset{AsOf: 1672531200000})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"reset","asOf":1672531200000}`, string(data))
}
