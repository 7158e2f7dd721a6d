// Package progress turns the engine's textual progress hooks into normalized
// ProgressEvents and forwards them to a display sink.
package progress

import (
	"regexp"
	"strconv"

	"github.com/ytget/ytgrab/internal/model"
)

// StatusDownloading is the only raw status the relay handles. Terminal states
// come from the engine's return value, not from hooks.
const StatusDownloading = "downloading"

// percentPattern matches the first decimal number immediately preceding '%'
var percentPattern = regexp.MustCompile(`(\d+\.?\d*)%`)

// RawEvent mirrors the engine's progress hook payload
type RawEvent struct {
	Status     string // "downloading", "finished", "error", ...
	PercentStr string // e.g. " 45.3%", may carry terminal color codes
}

// Sink receives normalized events
type Sink func(model.ProgressEvent)

// Relay parses raw events and forwards each successfully parsed one to its sink
// synchronously, exactly once. It keeps no state between events.
type Relay struct {
	sink Sink
}

// NewRelay creates a relay forwarding to sink; a nil sink only parses
func NewRelay(sink Sink) *Relay {
	return &Relay{sink: sink}
}

// OnEvent normalizes raw and forwards it. The boolean is false when the event
// was dropped: wrong status, or no parseable percentage.
func (r *Relay) OnEvent(raw RawEvent) (model.ProgressEvent, bool) {
	ev, ok := Parse(raw)
	if !ok {
		return model.ProgressEvent{}, false
	}
	if r.sink != nil {
		r.sink(ev)
	}
	return ev, true
}

// Parse normalizes raw without forwarding it
func Parse(raw RawEvent) (model.ProgressEvent, bool) {
	if raw.Status != StatusDownloading {
		return model.ProgressEvent{}, false
	}

	m := percentPattern.FindStringSubmatch(raw.PercentStr)
	if len(m) < 2 {
		return model.ProgressEvent{}, false
	}

	percent, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.ProgressEvent{}, false
	}

	fraction := percent / 100
	if fraction > 1 {
		fraction = 1
	}

	return model.ProgressEvent{Status: model.ProgressDownloading, Fraction: fraction}, true
}
