package download

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytgrab/internal/logctx"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/progress"
)

// DefaultProgressInterval is how often the engine reports progress
const DefaultProgressInterval = 250 * time.Millisecond

// Service runs jobs through the yt-dlp executable
type Service struct {
	executable       string // empty uses go-ytdlp's resolution
	progressInterval time.Duration

	installMu sync.Mutex
	installed bool
}

// NewService creates a download service. executable overrides the yt-dlp
// binary; pass "" to let go-ytdlp find or install one.
func NewService(executable string) *Service {
	return &Service{
		executable:       strings.TrimSpace(executable),
		progressInterval: DefaultProgressInterval,
	}
}

// SetProgressInterval sets how often progress hooks fire
func (s *Service) SetProgressInterval(d time.Duration) {
	if d > 0 {
		s.progressInterval = d
	}
}

// EnsureInstalled makes sure a yt-dlp executable is available, downloading it
// into go-ytdlp's cache when needed. It is a no-op when an executable override
// is configured.
// A failed install is retried on the next call.
func (s *Service) EnsureInstalled(ctx context.Context) error {
	if s.executable != "" {
		return nil
	}

	s.installMu.Lock()
	defer s.installMu.Unlock()
	if s.installed {
		return nil
	}

	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	s.installed = true

	logctx.LoggerFromContext(ctx).Info("yt-dlp ready", "executable", resolved.Executable)
	return nil
}

// Run executes spec for sourceURL and blocks until the engine exits
func (s *Service) Run(ctx context.Context, sourceURL string, spec model.JobSpec, onEvent func(progress.RawEvent)) (*Result, error) {
	logger := logctx.LoggerFromContext(ctx)

	if err := s.EnsureInstalled(ctx); err != nil {
		return nil, &EngineError{URL: sourceURL, Err: err}
	}

	dl := s.command(planFor(spec))
	dl.ProgressFunc(s.progressInterval, func(update ytdlp.ProgressUpdate) {
		if onEvent == nil {
			return
		}
		onEvent(rawEvent(update))
	})

	logger.Debug("starting engine", "url", sourceURL, "format", spec.FormatSelector, "output", spec.OutputTemplate)

	res, err := dl.Run(ctx, sourceURL)
	if err != nil {
		logger.Error("engine failed", "url", sourceURL, "err", err)
		return nil, &EngineError{URL: sourceURL, Err: err}
	}

	result := &Result{}
	if res != nil {
		info, err := res.GetExtractedInfo()
		if err == nil && len(info) > 0 {
			if info[0].Filename != nil {
				result.OutputPath = *info[0].Filename
			} else if info[0].AltFilename != nil {
				result.OutputPath = *info[0].AltFilename
			}
			if info[0].Title != nil {
				result.Title = *info[0].Title
			}
		}
	}

	return result, nil
}

// unknownPercent is what yt-dlp prints when the total size is not known yet
const unknownPercent = "N/A%"

// rawEvent translates a go-ytdlp update into the engine's textual hook form.
// go-ytdlp reports 0% when the total is unknown; that is passed on as
// unknownPercent, which the relay ignores.
func rawEvent(update ytdlp.ProgressUpdate) progress.RawEvent {
	percent := update.PercentString()
	if update.TotalBytes == 0 && !update.Status.IsCompletedType() {
		percent = unknownPercent
	}
	return progress.RawEvent{
		Status:     string(update.Status),
		PercentStr: percent,
	}
}

// command assembles the yt-dlp invocation for plan
func (s *Service) command(plan commandPlan) *ytdlp.Command {
	// PrintJSON downloads as well and makes the extracted info available to Run
	dl := ytdlp.New().
		PrintJSON().
		NoPlaylist().
		Output(plan.Output).
		Format(plan.Format)

	if s.executable != "" {
		dl.SetExecutable(s.executable)
	}

	if plan.ExtractAudio {
		dl.ExtractAudio().
			AudioFormat(plan.AudioFormat).
			AudioQuality(plan.AudioQuality)
	}

	if plan.FFmpegLocation != "" {
		dl.FFmpegLocation(plan.FFmpegLocation)
	}

	return dl
}

// commandPlan is the engine-level reading of a JobSpec
type commandPlan struct {
	Output         string
	Format         string
	ExtractAudio   bool
	AudioFormat    string
	AudioQuality   string
	FFmpegLocation string
}

func planFor(spec model.JobSpec) commandPlan {
	plan := commandPlan{
		Output:         spec.OutputTemplate,
		Format:         spec.FormatSelector,
		FFmpegLocation: spec.ConverterLocation,
	}

	if pp := spec.PostProcessing; pp != nil {
		plan.ExtractAudio = true
		plan.AudioFormat = pp.TargetCodec
		plan.AudioQuality = audioQualityArg(pp.TargetBitrate)
	}

	return plan
}

// audioQualityArg converts "192kbps" into yt-dlp's "192K"
func audioQualityArg(bitrate string) string {
	b := strings.ToLower(strings.TrimSpace(bitrate))
	b = strings.TrimSuffix(b, "bps")
	b = strings.TrimSuffix(b, "k")
	if b == "" {
		return ""
	}
	return b + "K"
}
