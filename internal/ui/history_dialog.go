package ui

import (
	"context"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/ytgrab/internal/history"
	"github.com/ytget/ytgrab/internal/logctx"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

// ShowHistoryDialog lists finished downloads, newest first. Selecting a
// completed entry reveals its file.
func ShowHistoryDialog(ctx context.Context, window fyne.Window, localization *Localization, entries []history.Entry) {
	l := localization

	var content fyne.CanvasObject
	if len(entries) == 0 {
		content = widget.NewLabel(l.GetText(KeyNoHistory))
	} else {
		list := widget.NewList(
			func() int { return len(entries) },
			func() fyne.CanvasObject {
				title := widget.NewLabel("")
				title.Truncation = fyne.TextTruncateEllipsis
				title.TextStyle = fyne.TextStyle{Bold: true}
				detail := widget.NewLabel("")
				detail.Truncation = fyne.TextTruncateEllipsis
				return container.NewVBox(title, detail)
			},
			func(id widget.ListItemID, obj fyne.CanvasObject) {
				box := obj.(*fyne.Container)
				box.Objects[0].(*widget.Label).SetText(historyTitle(entries[id]))
				box.Objects[1].(*widget.Label).SetText(historyDetail(entries[id]))
			},
		)
		list.OnSelected = func(id widget.ListItemID) {
			list.UnselectAll()
			revealEntry(ctx, window, l, entries[id])
		}
		content = list
	}

	d := dialog.NewCustom(l.GetText(KeyHistory), l.GetText(KeyClose), content, window)
	d.Resize(fyne.NewSize(HistoryDialogWidth, HistoryDialogHeight))
	d.Show()
}

func historyTitle(e history.Entry) string {
	icon := IconSuccess
	if e.Status == model.JobStatusError {
		icon = IconError
	}
	title := e.Title
	if title == "" {
		title = e.URL
	}
	return icon + " " + title
}

func historyDetail(e history.Entry) string {
	format := e.Quality.Label()
	if e.MediaKind == model.MediaKindAudio {
		format = "mp3"
	}
	detail := format + MiddleDotSeparator + humanize.Time(e.FinishedAt)
	if e.Error != "" {
		detail += MiddleDotSeparator + e.Error
	} else if e.OutputPath != "" {
		detail += MiddleDotSeparator + filepath.Base(e.OutputPath)
	}
	return detail
}

func revealEntry(ctx context.Context, window fyne.Window, l *Localization, e history.Entry) {
	if e.OutputPath == "" {
		return
	}
	if err := platform.RevealInManager(e.OutputPath); err != nil {
		logctx.LoggerFromContext(ctx).Warn("failed to reveal file", "path", e.OutputPath, "err", err)
		dialog.ShowInformation(l.GetText(KeyHistory), l.GetText(KeyErrorOpening)+": "+err.Error(), window)
	}
}
