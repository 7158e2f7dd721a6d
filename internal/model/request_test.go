package model

import (
	"testing"
	"time"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		input    string
		expected Quality
		wantErr  bool
	}{
		{"best", QualityBest, false},
		{"", QualityBest, false},
		{"1080", Quality1080, false},
		{"720p", Quality720, false},
		{" 480P ", Quality480, false},
		{"360", Quality360, false},
		{"4k", "", true},
		{"240", "", true},
	}

	for _, test := range tests {
		q, err := ParseQuality(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseQuality(%q) expected error, got %s", test.input, q)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseQuality(%q) unexpected error: %v", test.input, err)
			continue
		}
		if q != test.expected {
			t.Errorf("ParseQuality(%q) = %s, expected %s", test.input, q, test.expected)
		}
	}
}

func TestQuality_Height(t *testing.T) {
	tests := []struct {
		quality  Quality
		expected int
		label    string
	}{
		{QualityBest, 0, "best"},
		{Quality1080, 1080, "1080p"},
		{Quality720, 720, "720p"},
		{Quality480, 480, "480p"},
		{Quality360, 360, "360p"},
	}

	for _, test := range tests {
		if h := test.quality.Height(); h != test.expected {
			t.Errorf("Quality(%s).Height() = %d, expected %d", test.quality, h, test.expected)
		}
		if l := test.quality.Label(); l != test.label {
			t.Errorf("Quality(%s).Label() = %s, expected %s", test.quality, l, test.label)
		}
	}
}

func TestParseMediaKind(t *testing.T) {
	if k, err := ParseMediaKind("Audio"); err != nil || k != MediaKindAudio {
		t.Errorf("ParseMediaKind(Audio) = %s, %v", k, err)
	}
	if k, err := ParseMediaKind(""); err != nil || k != MediaKindVideo {
		t.Errorf("ParseMediaKind(\"\") = %s, %v", k, err)
	}
	if _, err := ParseMediaKind("podcast"); err == nil {
		t.Error("expected error for unknown media kind")
	}
}

func TestJob_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		url      string
		expected string
	}{
		{"Video Title", "", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "/home/me/Downloads/My Clip.mp4", "https://youtube.com/watch?v=123", "My Clip"},
		{"", `C:\Users\me\Downloads\Song.mp3`, "https://youtube.com/watch?v=123", "Song"},
		{"https://youtube.com/watch?v=456", "", "https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456"},
		{"", "", "https://youtube.com/watch?v=789", "https://youtube.com/watch?v=789"},
	}

	for _, test := range tests {
		job := &Job{
			Title:      test.title,
			OutputPath: test.output,
			Request:    DownloadRequest{SourceURL: test.url},
		}
		if got := job.DisplayTitle(); got != test.expected {
			t.Errorf("DisplayTitle() with title=%q output=%q = %q, expected %q",
				test.title, test.output, got, test.expected)
		}
	}
}

func TestJob_Elapsed(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	job := &Job{StartedAt: start, FinishedAt: start.Add(90 * time.Second)}
	if got := job.Elapsed(); got != 90*time.Second {
		t.Errorf("Elapsed() = %v, expected 90s", got)
	}

	if got := (&Job{}).Elapsed(); got != 0 {
		t.Errorf("Elapsed() on unstarted job = %v, expected 0", got)
	}
}
