package model

import (
	"path/filepath"
	"strings"
	"time"
)

// PostProcessing describes the audio transcoding step run after download
type PostProcessing struct {
	TargetCodec   string
	TargetBitrate string
}

// JobSpec is the declarative job handed to the download engine. It is built
// once from a DownloadRequest and never mutated afterwards.
type JobSpec struct {
	OutputTemplate    string
	FormatSelector    string
	PostProcessing    *PostProcessing // nil when no transcoding is requested
	ConverterLocation string          // empty lets the engine search its defaults
}

// Job is the record of the single in-flight download
type Job struct {
	ID         string
	Request    DownloadRequest
	Spec       JobSpec
	Status     JobStatus
	Fraction   float64 // 0.0 to 1.0
	Title      string  // video title, when known
	OutputPath string  // path to downloaded file
	LastError  string  // engine error message, verbatim
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the job ran, or has been running so far
func (j *Job) Elapsed() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.FinishedAt.IsZero() {
		return time.Since(j.StartedAt)
	}
	return j.FinishedAt.Sub(j.StartedAt)
}

// DisplayTitle returns title, filename, or URL in order of preference
func (j *Job) DisplayTitle() string {
	if j.Title != "" && !strings.HasPrefix(j.Title, "http") {
		return j.Title
	}

	if j.OutputPath != "" {
		// Support both separators regardless of the host OS
		name := j.OutputPath
		if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
			name = name[idx+1:]
		}
		if ext := filepath.Ext(name); ext != "" && len(ext) < len(name) {
			name = strings.TrimSuffix(name, ext)
		}
		if name != "" {
			return name
		}
	}

	return j.Request.SourceURL
}
