package model

import (
	"fmt"
	"strings"
)

// MediaKind selects between a full video download and audio extraction
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
)

// String returns the string representation of MediaKind
func (k MediaKind) String() string {
	return string(k)
}

// ParseMediaKind converts a settings/flag value into a MediaKind
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(strings.ToLower(strings.TrimSpace(s))) {
	case MediaKindVideo, "":
		return MediaKindVideo, nil
	case MediaKindAudio:
		return MediaKindAudio, nil
	default:
		return "", fmt.Errorf("unknown media kind: %q", s)
	}
}

// Quality is the quality ceiling: the maximum vertical resolution accepted for
// the selected video stream
type Quality string

const (
	QualityBest Quality = "best"
	Quality1080 Quality = "1080"
	Quality720  Quality = "720"
	Quality480  Quality = "480"
	Quality360  Quality = "360"
)

// QualityOptions lists the ceilings offered to the user, best first
var QualityOptions = []Quality{QualityBest, Quality1080, Quality720, Quality480, Quality360}

// String returns the string representation of Quality
func (q Quality) String() string {
	return string(q)
}

// Height returns the numeric ceiling, or 0 for QualityBest
func (q Quality) Height() int {
	switch q {
	case Quality1080:
		return 1080
	case Quality720:
		return 720
	case Quality480:
		return 480
	case Quality360:
		return 360
	default:
		return 0
	}
}

// Label returns a human readable label such as "720p"
func (q Quality) Label() string {
	if q.Height() == 0 {
		return "best"
	}
	return string(q) + "p"
}

// ParseQuality accepts "best", "720" or "720p" (case-insensitive)
func ParseQuality(s string) (Quality, error) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "p")
	if v == "" {
		return QualityBest, nil
	}
	for _, q := range QualityOptions {
		if string(q) == v {
			return q, nil
		}
	}
	return "", fmt.Errorf("unknown quality: %q", s)
}

// DownloadRequest is what the user submitted: created fresh per submission and
// discarded once its job terminates
type DownloadRequest struct {
	SourceURL      string
	MediaKind      MediaKind
	Quality        Quality
	DestinationDir string
	ConverterPath  string // empty when no local converter was located
}
