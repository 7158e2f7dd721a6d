package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/controller"
	"github.com/ytget/ytgrab/internal/model"
)

func newTestUI(t *testing.T) (*RootUI, *config.Settings, chan controller.Command) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	commands := make(chan controller.Command, 4)
	return NewRootUI(context.Background(), window, settings, commands, nil), settings, commands
}

func TestRootUI_SubmitSendsSelection(t *testing.T) {
	ui, settings, commands := newTestUI(t)

	ui.urlEntry.SetText("https://www.youtube.com/watch?v=abc")
	ui.qualitySelect.SetSelectedIndex(2) // 720
	test.Tap(ui.downloadBtn)

	require.Len(t, commands, 1)
	cmd := (<-commands).(controller.Submit)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", cmd.URL)
	assert.Equal(t, model.MediaKindVideo, cmd.MediaKind)
	assert.Equal(t, model.Quality720, cmd.Quality)
	assert.Equal(t, model.Quality720, settings.GetQuality())
}

func TestRootUI_AudioDisablesQuality(t *testing.T) {
	ui, settings, commands := newTestUI(t)

	ui.kindSelect.SetSelectedIndex(1)
	assert.True(t, ui.qualitySelect.Disabled())

	test.Tap(ui.downloadBtn)
	cmd := (<-commands).(controller.Submit)
	assert.Equal(t, model.MediaKindAudio, cmd.MediaKind)
	assert.Equal(t, model.MediaKindAudio, settings.GetMediaKind())

	ui.kindSelect.SetSelectedIndex(0)
	assert.False(t, ui.qualitySelect.Disabled())
}

func TestRootUI_DownloadDisabledWhileRunning(t *testing.T) {
	ui, _, commands := newTestUI(t)
	job := model.Job{ID: "job-1", Request: model.DownloadRequest{SourceURL: "https://example.com/v"}}

	ui.Render(controller.JobStarted{Job: job})
	assert.True(t, ui.downloadBtn.Disabled())

	ui.onDownloadClick()
	assert.Len(t, commands, 0)

	ui.Render(controller.JobFinished{Job: job, Err: errors.New("boom")})
	assert.False(t, ui.downloadBtn.Disabled())
}

func TestRootUI_RenderProgress(t *testing.T) {
	ui, _, _ := newTestUI(t)
	assert.Equal(t, "0.0%", ui.percentLabel.Text)

	ui.Render(controller.ProgressUpdate{Event: model.ProgressEvent{Status: model.ProgressDownloading, Fraction: 0.453}})
	assert.InDelta(t, 0.453, ui.progressBar.Value, 1e-9)
	assert.Equal(t, "45.3%", ui.percentLabel.Text)

	ui.Render(controller.ProgressUpdate{Event: model.ProgressEvent{Status: model.ProgressDownloading, Fraction: 0.999}})
	assert.Equal(t, "99.9%", ui.percentLabel.Text)

	ui.Render(controller.ProgressUpdate{Event: model.ProgressEvent{Status: model.ProgressFinished, Fraction: 1}})
	assert.Equal(t, "100.0%", ui.percentLabel.Text)
}

func TestRootUI_SuccessClearsURL(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.urlEntry.SetText("https://example.com/v")

	ui.Render(controller.JobFinished{Job: model.Job{Title: "clip"}})
	assert.Empty(t, ui.urlEntry.Text)
}

func TestRootUI_FolderChanged(t *testing.T) {
	ui, settings, _ := newTestUI(t)
	dir := t.TempDir()

	ui.Render(controller.FolderChanged{Path: dir})
	assert.Equal(t, dir, ui.folderEntry.Text)
	assert.Equal(t, dir, settings.GetDownloadDirectory())
}

func TestRootUI_StatusTextLocalized(t *testing.T) {
	ui, _, _ := newTestUI(t)

	done := controller.StatusMessage{Kind: controller.StatusCompleted, MediaKind: model.MediaKindVideo, Quality: model.Quality720}
	ui.Render(done)
	assert.Equal(t, IconSuccess+" Video (720p) downloaded successfully!", ui.statusLabel.Text)

	ui.onLanguageChange("fr")
	assert.Equal(t, IconSuccess+" Vidéo (720p) téléchargée avec succès !", ui.statusLabel.Text)

	ui.Render(controller.StatusMessage{Kind: controller.StatusFailed, Detail: "ERROR: Video unavailable"})
	assert.Equal(t, IconError+" Erreur : ERROR: Video unavailable", ui.statusLabel.Text)
}

func TestLocalization_Fallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("xx")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	l.SetLanguage("ru")
	assert.Equal(t, "Скачать", l.GetText(KeyDownload))
	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}
