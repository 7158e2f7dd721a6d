package download

import (
	"context"

	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/progress"
)

// Engine runs a single job to completion. Run blocks until the engine exits
// and calls onEvent synchronously, on the engine's goroutine, for every raw
// progress hook.
type Engine interface {
	Run(ctx context.Context, sourceURL string, spec model.JobSpec, onEvent func(progress.RawEvent)) (*Result, error)
}

// Result describes what the engine produced
type Result struct {
	OutputPath string // as reported by the engine; may predate post-processing
	Title      string
}
