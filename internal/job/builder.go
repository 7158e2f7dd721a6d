package job

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ytget/ytgrab/internal/model"
)

// Engine output template; title and ext are resolved by the engine at run time
const OutputTemplateName = "%(title)s.%(ext)s"

// Audio post-processing targets
const (
	AudioCodec   = "mp3"
	AudioBitrate = "192kbps"
)

// Format selectors in yt-dlp selector syntax
const (
	// AudioFormatSelector picks the best audio-only stream, else the best overall
	AudioFormatSelector = "bestaudio/best"

	// BestVideoFormatSelector prefers mp4 video + m4a audio, then a single mp4,
	// then anything
	BestVideoFormatSelector = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

	// cappedVideoFormat is filled with the height ceiling twice
	cappedVideoFormat = "bestvideo[height<=%d]+bestaudio/best[height<=%d]"
)

// Build maps a request to its JobSpec. It fails only when the source URL is
// empty.
func Build(req model.DownloadRequest) (model.JobSpec, error) {
	if strings.TrimSpace(req.SourceURL) == "" {
		return model.JobSpec{}, &ValidationError{Field: "source_url", Reason: "must not be empty"}
	}

	spec := model.JobSpec{
		OutputTemplate:    filepath.Join(req.DestinationDir, OutputTemplateName),
		ConverterLocation: req.ConverterPath,
	}

	if req.MediaKind == model.MediaKindAudio {
		spec.FormatSelector = AudioFormatSelector
		spec.PostProcessing = &model.PostProcessing{
			TargetCodec:   AudioCodec,
			TargetBitrate: AudioBitrate,
		}
		return spec, nil
	}

	spec.FormatSelector = VideoFormatSelector(req.Quality)
	return spec, nil
}

// VideoFormatSelector returns the selector for a video download capped at q
func VideoFormatSelector(q model.Quality) string {
	h := q.Height()
	if h == 0 {
		return BestVideoFormatSelector
	}
	return fmt.Sprintf(cappedVideoFormat, h, h)
}
