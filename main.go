package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/controller"
	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/history"
	"github.com/ytget/ytgrab/internal/logctx"
	"github.com/ytget/ytgrab/internal/platform"
	"github.com/ytget/ytgrab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytgrab"
	AppName = "ytgrab"

	WindowWidth  = 560
	WindowHeight = 420
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load environment: %v\n", err)
		os.Exit(1)
	}

	logger := logctx.New(os.Stderr, env.SlogLevel())
	slog.SetDefault(logger)
	logger.Info("starting", "app", AppName, "version", version)

	ctx, cancel := context.WithCancel(logctx.WithLogger(context.Background(), logger))
	defer cancel()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFormTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warn("failed to ensure downloads dir", "dir", downloadsDir, "err", err)
	}

	converter := platform.LocateConverter(env.ConverterPath)
	if converter == "" {
		logger.Info("no bundled converter found, yt-dlp will search PATH")
	}

	downloadSvc := download.NewService(env.YtDlpPath)
	go func() {
		if err := downloadSvc.EnsureInstalled(ctx); err != nil {
			logger.Error("yt-dlp is not available", "err", err)
		}
	}()

	opts := controller.Options{
		Engine:        downloadSvc,
		Reveal:        platform.RevealInManager,
		AutoReveal:    settings.GetAutoRevealOnComplete,
		Folder:        downloadsDir,
		ConverterPath: converter,
	}
	if env.ProbeTitles {
		opts.Prober = platform.NewTitleProber()
	}

	var lister ui.HistoryLister
	store, err := history.Open(env.HistoryPath)
	if err != nil {
		logger.Warn("download history disabled", "path", env.HistoryPath, "err", err)
	} else {
		defer store.Close()
		opts.History = store
		lister = store
	}

	ctrl := controller.New(opts)
	rootUI := ui.NewRootUI(ctx, myWindow, settings, ctrl.Commands(), lister)

	go ctrl.Run(ctx)
	go rootUI.Listen(ctx, ctrl.Messages())

	myWindow.ShowAndRun()
}
