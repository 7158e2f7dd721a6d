package model

// Package model defines domain data structures shared across the app: download
// requests, the job specs derived from them, progress events, and the record of
// the single in-flight job. Values are plain structs so they can cross goroutine
// boundaries as messages.
