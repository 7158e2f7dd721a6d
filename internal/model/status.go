package model

// JobStatus represents the lifecycle state of a download job
type JobStatus string

const (
	// JobStatusPending means the job was built but the engine has not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusRunning means the engine is downloading or post-processing
	JobStatusRunning JobStatus = "Running"

	// JobStatusCompleted means the engine finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the engine failed
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (s JobStatus) String() string {
	return string(s)
}

// IsActive returns true while the job occupies the single engine slot
func (s JobStatus) IsActive() bool {
	return s == JobStatusPending || s == JobStatusRunning
}

// IsFinished returns true if the job reached a terminal state
func (s JobStatus) IsFinished() bool {
	return s == JobStatusCompleted || s == JobStatusError
}

// ProgressStatus tags a ProgressEvent
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
	ProgressError       ProgressStatus = "error"
)

// ProgressEvent is a normalized progress update for a display sink. It is
// never persisted.
type ProgressEvent struct {
	Status   ProgressStatus
	Fraction float64 // in [0,1]
}

// Percent returns the fraction as a percentage
func (e ProgressEvent) Percent() float64 {
	return e.Fraction * 100
}
