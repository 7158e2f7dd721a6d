// Command ytgrab downloads a single video or its audio track from the
// terminal, using the same controller as the desktop application.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/controller"
	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/history"
	"github.com/ytget/ytgrab/internal/logctx"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage error")

// options are the parsed command line flags
type options struct {
	url     string
	kind    model.MediaKind
	quality model.Quality
	outDir  string
}

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load environment: %v\n", err)
		os.Exit(exitFailure)
	}

	logger := logctx.New(os.Stderr, env.SlogLevel())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(logctx.WithLogger(context.Background(), logger), os.Interrupt)
	defer stop()

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(exitUsage)
	}

	svc := download.NewService(env.YtDlpPath)
	ctrlOpts := controller.Options{
		Engine:        svc,
		ConverterPath: platform.LocateConverter(env.ConverterPath),
	}
	if env.ProbeTitles {
		ctrlOpts.Prober = platform.NewTitleProber()
	}
	store, err := history.Open(env.HistoryPath)
	if err != nil {
		logger.Warn("download history disabled", "path", env.HistoryPath, "err", err)
	} else {
		ctrlOpts.History = store
	}

	code := run(ctx, opts, ctrlOpts, os.Stdout, os.Stderr)
	if store != nil {
		store.Close()
	}
	stop()
	os.Exit(code)
}

// parseArgs parses flags and the single URL argument
func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("ytgrab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ytgrab [-audio] [-quality best|1080|720|480|360] [-o dir] URL")
		fs.PrintDefaults()
	}

	audio := fs.Bool("audio", false, "extract the audio track as MP3")
	quality := fs.String("quality", string(model.QualityBest), "video quality ceiling")
	outDir := fs.String("o", "", "destination folder (default: the user's Downloads folder)")

	if err := fs.Parse(args); err != nil {
		return options{}, errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, errUsage
	}

	q, err := model.ParseQuality(*quality)
	if err != nil {
		fmt.Fprintf(stderr, "ytgrab: %v\n", err)
		return options{}, errUsage
	}

	opts := options{
		url:     fs.Arg(0),
		kind:    model.MediaKindVideo,
		quality: q,
		outDir:  *outDir,
	}
	if *audio {
		opts.kind = model.MediaKindAudio
	}
	return opts, nil
}

// run submits one job and renders its messages until it finishes. It returns
// the process exit code.
func run(ctx context.Context, opts options, ctrlOpts controller.Options, stdout, stderr io.Writer) int {
	logger := logctx.LoggerFromContext(ctx)

	dir := opts.outDir
	if dir == "" {
		home, err := platform.GetHomeDownloadsDir()
		if err != nil {
			fmt.Fprintf(stderr, "ytgrab: %v\n", err)
			return exitFailure
		}
		dir = home
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			fmt.Fprintf(stderr, "ytgrab: %v\n", err)
			return exitFailure
		}
	}
	ctrlOpts.Folder = dir

	ctrl := controller.New(ctrlOpts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ctrl.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()

		select {
		case ctrl.Commands() <- controller.Submit{URL: opts.url, MediaKind: opts.kind, Quality: opts.quality}:
		case <-gctx.Done():
			return gctx.Err()
		}
		return render(gctx, ctrl.Messages(), stdout, stderr)
	})

	if err := g.Wait(); err != nil {
		logger.Debug("download failed", "err", err)
		return exitFailure
	}
	return exitOK
}

// render prints status lines to stdout and drives a progress bar on stderr.
// It returns nil once a job finished successfully.
func render(ctx context.Context, msgs <-chan controller.Message, stdout, stderr io.Writer) error {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionClearOnFinish(),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m := <-msgs:
			switch m := m.(type) {
			case controller.ProgressUpdate:
				_ = bar.Set(int(m.Event.Percent()))
			case controller.StatusMessage:
				if m.Kind == controller.StatusDownloading {
					bar.Describe(m.Detail)
					continue
				}
				_ = bar.Clear()
				fmt.Fprintln(stdout, m.String())
				if m.Kind == controller.StatusMissingURL || m.Kind == controller.StatusInvalid {
					return errors.New(m.String())
				}
			case controller.JobFinished:
				_ = bar.Finish()
				if m.Err == nil && m.Job.OutputPath != "" {
					fmt.Fprintln(stdout, m.Job.OutputPath)
				}
				return m.Err
			}
		}
	}
}
