package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytgrab/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawEvent
		ok       bool
		fraction float64
	}{
		{"decimal", RawEvent{Status: "downloading", PercentStr: "45.3%"}, true, 0.453},
		{"padded", RawEvent{Status: "downloading", PercentStr: "  7.0%"}, true, 0.07},
		{"integer", RawEvent{Status: "downloading", PercentStr: "100%"}, true, 1},
		{"zero", RawEvent{Status: "downloading", PercentStr: "0.0%"}, true, 0},
		{"ansi colored", RawEvent{Status: "downloading", PercentStr: "\x1b[0;94m 12.5%\x1b[0m"}, true, 0.125},
		{"first number wins", RawEvent{Status: "downloading", PercentStr: "3.5% of 10%"}, true, 0.035},
		{"not available", RawEvent{Status: "downloading", PercentStr: "N/A%"}, false, 0},
		{"missing", RawEvent{Status: "downloading"}, false, 0},
		{"no percent sign", RawEvent{Status: "downloading", PercentStr: "45.3"}, false, 0},
		{"finished", RawEvent{Status: "finished", PercentStr: "100%"}, false, 0},
		{"finished without percent", RawEvent{Status: "finished"}, false, 0},
		{"error", RawEvent{Status: "error", PercentStr: "12%"}, false, 0},
		{"clamped", RawEvent{Status: "downloading", PercentStr: "101.2%"}, true, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ev, ok := Parse(test.raw)
			require.Equal(t, test.ok, ok)
			if !test.ok {
				assert.Equal(t, model.ProgressEvent{}, ev)
				return
			}
			assert.Equal(t, model.ProgressDownloading, ev.Status)
			assert.InDelta(t, test.fraction, ev.Fraction, 1e-9)
		})
	}
}

func TestRelay_ForwardsExactlyOnce(t *testing.T) {
	var got []model.ProgressEvent
	relay := NewRelay(func(ev model.ProgressEvent) {
		got = append(got, ev)
	})

	events := []RawEvent{
		{Status: "downloading", PercentStr: "10.0%"},
		{Status: "downloading", PercentStr: "N/A%"},
		{Status: "downloading", PercentStr: "10.0%"},
		{Status: "finished"},
		{Status: "downloading", PercentStr: "55.5%"},
	}
	for _, raw := range events {
		relay.OnEvent(raw)
	}

	require.Len(t, got, 3)
	assert.InDelta(t, 0.10, got[0].Fraction, 1e-9)
	assert.InDelta(t, 0.10, got[1].Fraction, 1e-9)
	assert.InDelta(t, 0.555, got[2].Fraction, 1e-9)
}

func TestRelay_SinkCalledBeforeReturn(t *testing.T) {
	delivered := false
	relay := NewRelay(func(model.ProgressEvent) { delivered = true })

	ev, ok := relay.OnEvent(RawEvent{Status: "downloading", PercentStr: "45.3%"})
	require.True(t, ok)
	assert.True(t, delivered)
	assert.Equal(t, model.ProgressDownloading, ev.Status)
	assert.InDelta(t, 0.453, ev.Fraction, 1e-9)
}

func TestRelay_NilSink(t *testing.T) {
	relay := NewRelay(nil)
	_, ok := relay.OnEvent(RawEvent{Status: "downloading", PercentStr: "1%"})
	assert.True(t, ok)
}
