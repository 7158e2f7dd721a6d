// Package controller owns the download session. Views send typed Commands and
// render the Messages it emits; the controller never touches UI state.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/history"
	"github.com/ytget/ytgrab/internal/job"
	"github.com/ytget/ytgrab/internal/logctx"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
	"github.com/ytget/ytgrab/internal/progress"
)

// JobIDPrefix prefixes every generated job ID
const JobIDPrefix = "job-"

// TitleProber looks up a title before the download starts
type TitleProber interface {
	Supports(rawURL string) bool
	Title(ctx context.Context, rawURL string) (string, error)
}

// Recorder stores finished jobs
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
}

// Options configures a Controller. Engine is required.
type Options struct {
	Engine        download.Engine
	Prober        TitleProber
	History       Recorder
	Reveal        func(path string) error
	AutoReveal    func() bool // consulted after each successful job
	Folder        string
	ConverterPath string
}

// Session is the controller-owned state for the current user session
type Session struct {
	Folder        string
	ConverterPath string
	Active        *model.Job // nil when idle
}

// outcome is handed from the job worker back to the controller loop
type outcome struct {
	job model.Job
	err error
}

// Controller serializes commands, runs at most one job at a time, and emits
// messages in order
type Controller struct {
	engine     download.Engine
	prober     TitleProber
	history    Recorder
	reveal     func(path string) error
	autoReveal func() bool

	session  Session
	commands chan Command
	messages chan Message
	done     chan outcome
}

// New creates a controller
func New(opts Options) *Controller {
	return &Controller{
		engine:     opts.Engine,
		prober:     opts.Prober,
		history:    opts.History,
		reveal:     opts.Reveal,
		autoReveal: opts.AutoReveal,
		session: Session{
			Folder:        opts.Folder,
			ConverterPath: opts.ConverterPath,
		},
		commands: make(chan Command),
		messages: make(chan Message),
		done:     make(chan outcome, 1),
	}
}

// Commands returns the channel views send commands on
func (c *Controller) Commands() chan<- Command {
	return c.commands
}

// Messages returns the channel views render from. It must be drained for as
// long as the controller runs: progress delivery blocks the engine.
func (c *Controller) Messages() <-chan Message {
	return c.messages
}

// Run processes commands until ctx is done. A job already running when ctx is
// cancelled keeps going; only its remaining messages are dropped.
func (c *Controller) Run(ctx context.Context) error {
	logger := logctx.LoggerFromContext(ctx)
	logger.Info("controller started", "folder", c.session.Folder, "converter", c.session.ConverterPath)

	for {
		select {
		case <-ctx.Done():
			logger.Info("controller stopped")
			return nil
		case cmd := <-c.commands:
			c.handle(ctx, cmd)
		case out := <-c.done:
			c.finish(ctx, out)
		}
	}
}

func (c *Controller) handle(ctx context.Context, cmd Command) {
	switch cmd := cmd.(type) {
	case Submit:
		c.submit(ctx, cmd)
	case SetFolder:
		c.session.Folder = cmd.Path
		c.emit(ctx, FolderChanged{Path: cmd.Path})
	default:
		logctx.LoggerFromContext(ctx).Warn("unknown command", "command", fmt.Sprintf("%T", cmd))
	}
}

func (c *Controller) submit(ctx context.Context, cmd Submit) {
	logger := logctx.LoggerFromContext(ctx)

	if c.session.Active != nil {
		logger.Warn("submission rejected, job in flight", "job_id", c.session.Active.ID)
		c.emit(ctx, StatusMessage{Kind: StatusBusy})
		return
	}

	req := model.DownloadRequest{
		SourceURL:      cleanURL(cmd.URL),
		MediaKind:      cmd.MediaKind,
		Quality:        cmd.Quality,
		DestinationDir: c.session.Folder,
		ConverterPath:  c.session.ConverterPath,
	}
	if req.MediaKind == "" {
		req.MediaKind = model.MediaKindVideo
	}
	if req.Quality == "" {
		req.Quality = model.QualityBest
	}

	spec, err := job.Build(req)
	if errors.Is(err, job.ErrValidation) {
		c.emit(ctx, StatusMessage{Kind: StatusMissingURL})
		return
	}
	if err != nil {
		c.emit(ctx, StatusMessage{Kind: StatusInvalid, Detail: err.Error()})
		return
	}

	if err := platform.EnsureWritableDir(req.DestinationDir); err != nil {
		c.emit(ctx, StatusMessage{Kind: StatusInvalid, Detail: err.Error()})
		return
	}

	j := model.Job{
		ID:        generateJobID(),
		Request:   req,
		Spec:      spec,
		Status:    model.JobStatusRunning,
		StartedAt: time.Now(),
	}
	c.session.Active = &j

	logger.Info("job started", "job_id", j.ID, "url", req.SourceURL, "kind", req.MediaKind, "quality", req.Quality)

	c.emit(ctx, JobStarted{Job: j})
	c.emit(ctx, StatusMessage{Kind: StatusStarting, Detail: req.SourceURL})
	c.emit(ctx, ProgressUpdate{Event: model.ProgressEvent{Status: model.ProgressDownloading}})

	go c.runJob(ctx, j)
}

// runJob runs on its own goroutine. The engine ignores cancellation of ctx.
func (c *Controller) runJob(ctx context.Context, j model.Job) {
	engineCtx := context.WithoutCancel(ctx)
	logger := logctx.LoggerFromContext(ctx).With("job_id", j.ID)

	if c.prober != nil && c.prober.Supports(j.Request.SourceURL) {
		title, err := c.prober.Title(engineCtx, j.Request.SourceURL)
		if err != nil {
			logger.Debug("title probe failed", "err", err)
		} else {
			j.Title = title
			c.emit(ctx, StatusMessage{Kind: StatusDownloading, Detail: title})
		}
	}

	relay := progress.NewRelay(func(ev model.ProgressEvent) {
		j.Fraction = ev.Fraction
		c.emit(ctx, ProgressUpdate{Event: ev})
	})

	res, err := c.engine.Run(engineCtx, j.Request.SourceURL, j.Spec, func(raw progress.RawEvent) {
		relay.OnEvent(raw)
	})

	j.FinishedAt = time.Now()
	if err != nil {
		j.Status = model.JobStatusError
		j.LastError = err.Error()
	} else {
		j.Status = model.JobStatusCompleted
		j.Fraction = 1
		if res != nil {
			if j.Title == "" {
				j.Title = res.Title
			}
			j.OutputPath = resolveOutput(res.OutputPath, j.Spec)
		}
	}

	c.done <- outcome{job: j, err: err}
}

func (c *Controller) finish(ctx context.Context, out outcome) {
	logger := logctx.LoggerFromContext(ctx).With("job_id", out.job.ID)
	j := out.job
	c.session.Active = nil

	if out.err != nil {
		logger.Error("job failed", "err", out.err, "elapsed", j.Elapsed())
		c.emit(ctx, ProgressUpdate{Event: model.ProgressEvent{Status: model.ProgressError, Fraction: j.Fraction}})
		c.emit(ctx, StatusMessage{Kind: StatusFailed, Detail: engineText(out.err)})
	} else {
		size := platform.FileSize(j.OutputPath)
		logger.Info("job completed", "output", j.OutputPath, "bytes", size, "elapsed", j.Elapsed())
		c.emit(ctx, ProgressUpdate{Event: model.ProgressEvent{Status: model.ProgressFinished, Fraction: 1}})
		c.emit(ctx, StatusMessage{
			Kind:      StatusCompleted,
			MediaKind: j.Request.MediaKind,
			Quality:   j.Request.Quality,
			Size:      size,
		})
	}

	if c.history != nil {
		if err := c.history.Record(ctx, history.EntryFromJob(&j)); err != nil {
			logger.Warn("failed to record history", "err", err)
		}
	}

	c.emit(ctx, JobFinished{Job: j, Err: out.err})

	if out.err == nil && c.reveal != nil && c.autoReveal != nil && c.autoReveal() {
		target := j.OutputPath
		if target == "" {
			target = j.Request.DestinationDir
		}
		go func() {
			if err := c.reveal(target); err != nil {
				logger.Warn("failed to reveal download", "path", target, "err", err)
			}
		}()
	}
}

// emit delivers m unless ctx is done, in which case it is dropped
func (c *Controller) emit(ctx context.Context, m Message) {
	select {
	case c.messages <- m:
	case <-ctx.Done():
	}
}

// cleanURL strips whitespace and control characters pasted along with a URL
func cleanURL(raw string) string {
	s := strings.ReplaceAll(raw, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", "")
	return strings.TrimSpace(s)
}

func resolveOutput(reported string, spec model.JobSpec) string {
	if reported == "" {
		return ""
	}
	wantExt := ""
	if spec.PostProcessing != nil {
		wantExt = spec.PostProcessing.TargetCodec
	}
	if path, err := platform.ResolveOutputPath(reported, wantExt); err == nil {
		return path
	}
	return reported
}

func engineText(err error) string {
	var engineErr *download.EngineError
	if errors.As(err, &engineErr) {
		return engineErr.Error()
	}
	return err.Error()
}

// generateJobID generates a time-ordered unique job ID
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
