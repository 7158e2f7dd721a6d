package controller

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/ytget/ytgrab/internal/model"
)

// Command is sent by a view to the controller
type Command interface {
	command()
}

// Submit asks for a new download using the session's folder
type Submit struct {
	URL       string
	MediaKind model.MediaKind
	Quality   model.Quality
}

// SetFolder replaces the session's destination folder, typically after the
// view's folder picker returns
type SetFolder struct {
	Path string
}

func (Submit) command()    {}
func (SetFolder) command() {}

// Message is emitted by the controller for the view to render
type Message interface {
	message()
}

// ProgressUpdate carries a normalized progress event
type ProgressUpdate struct {
	Event model.ProgressEvent
}

// JobStarted is emitted once a submission passed validation; the view should
// disable resubmission until JobFinished
type JobStarted struct {
	Job model.Job
}

// JobFinished is emitted after the terminal ProgressUpdate and StatusMessage
type JobFinished struct {
	Job model.Job
	Err error
}

// FolderChanged confirms a SetFolder
type FolderChanged struct {
	Path string
}

func (ProgressUpdate) message() {}
func (JobStarted) message()     {}
func (JobFinished) message()    {}
func (FolderChanged) message()  {}
func (StatusMessage) message()  {}

// Level is the severity a status line is rendered with
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// StatusKind identifies what a StatusMessage reports so views can localize it
type StatusKind int

const (
	// StatusStarting: Detail is the source URL
	StatusStarting StatusKind = iota
	// StatusDownloading: Detail is the probed video title
	StatusDownloading
	// StatusCompleted: MediaKind, Quality and Size describe the result
	StatusCompleted
	// StatusFailed: Detail is the engine's error text, verbatim
	StatusFailed
	// StatusMissingURL: the submitted URL was empty
	StatusMissingURL
	// StatusInvalid: Detail is the validation reason
	StatusInvalid
	// StatusBusy: a job is already running
	StatusBusy
)

// StatusMessage is a human readable status line
type StatusMessage struct {
	Kind      StatusKind
	Detail    string
	MediaKind model.MediaKind
	Quality   model.Quality
	Size      int64 // bytes, 0 when unknown
}

// Level returns the severity for rendering
func (m StatusMessage) Level() Level {
	switch m.Kind {
	case StatusCompleted:
		return LevelSuccess
	case StatusBusy:
		return LevelWarning
	case StatusFailed, StatusMissingURL, StatusInvalid:
		return LevelError
	default:
		return LevelInfo
	}
}

// String renders the message in English
func (m StatusMessage) String() string {
	switch m.Kind {
	case StatusStarting:
		return "Downloading..."
	case StatusDownloading:
		return fmt.Sprintf("Downloading: %s", m.Detail)
	case StatusCompleted:
		var text string
		if m.MediaKind == model.MediaKindAudio {
			text = "Audio MP3 downloaded successfully"
		} else {
			text = fmt.Sprintf("Video (%s) downloaded successfully", m.Quality.Label())
		}
		if m.Size > 0 {
			text += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(m.Size)))
		}
		return text
	case StatusFailed:
		return "Error: " + m.Detail
	case StatusMissingURL:
		return "Please enter a video URL"
	case StatusInvalid:
		return m.Detail
	case StatusBusy:
		return "A download is already in progress"
	default:
		return m.Detail
	}
}
