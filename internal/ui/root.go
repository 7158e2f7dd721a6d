package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/controller"
	"github.com/ytget/ytgrab/internal/history"
	"github.com/ytget/ytgrab/internal/logctx"
	"github.com/ytget/ytgrab/internal/model"
)

// HistoryLister lists recently finished downloads
type HistoryLister interface {
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// RootUI is the main window. It owns widgets only; download state lives in
// the controller.
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	commands     chan<- controller.Command
	history      HistoryLister

	urlEntry      *widget.Entry
	folderEntry   *widget.Entry
	browseBtn     *widget.Button
	kindSelect    *widget.Select
	qualitySelect *widget.Select
	downloadBtn   *widget.Button
	statusLabel   *widget.Label
	progressBar   *widget.ProgressBar
	percentLabel  *widget.Label

	urlLabel     *widget.Label
	folderLabel  *widget.Label
	kindLabel    *widget.Label
	qualityLabel *widget.Label

	// last status, kept to re-render it after a language change
	lastStatus *controller.StatusMessage
	running    bool
}

// NewRootUI builds the window content. hist may be nil.
func NewRootUI(ctx context.Context, window fyne.Window, settings *config.Settings, commands chan<- controller.Command, hist HistoryLister) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		settings:     settings,
		localization: localization,
		commands:     commands,
		history:      hist,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.folderEntry.Disable()
	ui.browseBtn = widget.NewButton("", ui.onBrowseClick)

	ui.kindSelect = widget.NewSelect(nil, func(string) { ui.onKindChanged() })
	ui.qualitySelect = widget.NewSelect(nil, nil)

	ui.downloadBtn = widget.NewButton("", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string { return "" }
	ui.percentLabel = widget.NewLabel(fmt.Sprintf(ProgressLabelFormat, 0.0))

	ui.urlLabel = widget.NewLabel("")
	ui.folderLabel = widget.NewLabel("")
	ui.kindLabel = widget.NewLabel("")
	ui.qualityLabel = widget.NewLabel("")

	ui.refreshUITexts()
	ui.loadSelections()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var header fyne.CanvasObject = container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, settingsBtn)
	}

	form := container.NewVBox(
		ui.urlLabel,
		container.NewBorder(nil, nil, header, nil, ui.urlEntry),
		ui.folderLabel,
		container.NewBorder(nil, nil, nil, ui.browseBtn, ui.folderEntry),
		container.NewGridWithColumns(2,
			container.NewVBox(ui.kindLabel, ui.kindSelect),
			container.NewVBox(ui.qualityLabel, ui.qualitySelect),
		),
		ui.downloadBtn,
		widget.NewSeparator(),
		ui.statusLabel,
		container.NewBorder(nil, nil, nil, ui.percentLabel, ui.progressBar),
	)

	ui.window.SetContent(container.NewPadded(form))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	historyItem := fyne.NewMenuItem(ui.localization.GetText(KeyHistory), ui.onShowHistory)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), historyItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language. Select options
// are rebuilt, keeping the selected index.
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.urlLabel.SetText(l.GetText(KeyVideoURL))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.folderLabel.SetText(l.GetText(KeyDestination))
	ui.browseBtn.SetText(IconFolder + " " + l.GetText(KeyBrowse))
	ui.kindLabel.SetText(l.GetText(KeyFormat))
	ui.qualityLabel.SetText(l.GetText(KeyQuality))
	ui.downloadBtn.SetText(l.GetText(KeyDownload))

	kindIdx := ui.kindSelect.SelectedIndex()
	ui.kindSelect.Options = []string{
		IconVideo + " " + l.GetText(KeyKindVideo),
		IconMusic + " " + l.GetText(KeyKindAudio),
	}
	qualityIdx := ui.qualitySelect.SelectedIndex()
	ui.qualitySelect.Options = ui.qualityLabels()
	if kindIdx >= 0 {
		ui.kindSelect.SetSelectedIndex(kindIdx)
	}
	if qualityIdx >= 0 {
		ui.qualitySelect.SetSelectedIndex(qualityIdx)
	}
	ui.kindSelect.Refresh()
	ui.qualitySelect.Refresh()

	if ui.lastStatus != nil {
		ui.renderStatus(*ui.lastStatus)
	} else {
		ui.statusLabel.SetText(l.GetText(KeyReady))
	}
}

func (ui *RootUI) qualityLabels() []string {
	labels := make([]string, len(model.QualityOptions))
	for i, q := range model.QualityOptions {
		labels[i] = ui.qualityLabel(q)
	}
	return labels
}

func (ui *RootUI) qualityLabel(q model.Quality) string {
	if q == model.QualityBest {
		return ui.localization.GetText(KeyQualityBest)
	}
	return q.Label()
}

// loadSelections restores the last used kind and quality
func (ui *RootUI) loadSelections() {
	if ui.settings.GetMediaKind() == model.MediaKindAudio {
		ui.kindSelect.SetSelectedIndex(1)
	} else {
		ui.kindSelect.SetSelectedIndex(0)
	}

	selected := ui.settings.GetQuality()
	for i, q := range model.QualityOptions {
		if q == selected {
			ui.qualitySelect.SetSelectedIndex(i)
			break
		}
	}
	ui.onKindChanged()
}

func (ui *RootUI) selectedKind() model.MediaKind {
	if ui.kindSelect.SelectedIndex() == 1 {
		return model.MediaKindAudio
	}
	return model.MediaKindVideo
}

func (ui *RootUI) selectedQuality() model.Quality {
	idx := ui.qualitySelect.SelectedIndex()
	if idx < 0 || idx >= len(model.QualityOptions) {
		return model.QualityBest
	}
	return model.QualityOptions[idx]
}

// onKindChanged disables the quality ceiling for audio, which ignores it
func (ui *RootUI) onKindChanged() {
	if ui.qualitySelect == nil {
		return
	}
	if ui.selectedKind() == model.MediaKindAudio {
		ui.qualitySelect.Disable()
	} else {
		ui.qualitySelect.Enable()
	}
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	if ui.running {
		return
	}

	kind := ui.selectedKind()
	quality := ui.selectedQuality()
	ui.settings.SetMediaKind(kind)
	ui.settings.SetQuality(quality)

	ui.send(controller.Submit{
		URL:       ui.urlEntry.Text,
		MediaKind: kind,
		Quality:   quality,
	})
}

// onBrowseClick shows the folder picker and forwards the choice
func (ui *RootUI) onBrowseClick() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.send(controller.SetFolder{Path: uri.Path()})
	}, ui.window)
}

func (ui *RootUI) send(cmd controller.Command) {
	select {
	case ui.commands <- cmd:
	case <-ui.ctx.Done():
	}
}

// Listen renders controller messages until msgs is drained or ctx is done.
// Every message is marshaled onto the UI thread.
func (ui *RootUI) Listen(ctx context.Context, msgs <-chan controller.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-msgs:
			if !ok {
				return
			}
			fyne.Do(func() {
				ui.Render(m)
			})
		}
	}
}

// Render applies one controller message. It must run on the UI thread.
func (ui *RootUI) Render(m controller.Message) {
	switch m := m.(type) {
	case controller.JobStarted:
		ui.running = true
		ui.downloadBtn.Disable()
		ui.renderProgress(0)
	case controller.ProgressUpdate:
		ui.renderProgress(m.Event.Fraction)
	case controller.StatusMessage:
		ui.lastStatus = &m
		ui.renderStatus(m)
	case controller.JobFinished:
		ui.running = false
		ui.downloadBtn.Enable()
		if m.Err == nil {
			ui.urlEntry.SetText("")
			fyne.CurrentApp().SendNotification(&fyne.Notification{
				Title:   ui.localization.GetText(KeyDownloadDone),
				Content: m.Job.DisplayTitle(),
			})
		}
	case controller.FolderChanged:
		ui.folderEntry.SetText(m.Path)
		ui.settings.SetDownloadDirectory(m.Path)
	default:
		logctx.LoggerFromContext(ui.ctx).Warn("unhandled message", "message", fmt.Sprintf("%T", m))
	}
}

func (ui *RootUI) renderProgress(fraction float64) {
	ui.progressBar.SetValue(fraction)
	ui.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, fraction*100))
}

func (ui *RootUI) renderStatus(m controller.StatusMessage) {
	ui.statusLabel.SetText(ui.statusText(m))
	switch m.Level() {
	case controller.LevelSuccess:
		ui.statusLabel.Importance = widget.SuccessImportance
	case controller.LevelWarning:
		ui.statusLabel.Importance = widget.WarningImportance
	case controller.LevelError:
		ui.statusLabel.Importance = widget.DangerImportance
	default:
		ui.statusLabel.Importance = widget.MediumImportance
	}
	ui.statusLabel.Refresh()
}

// statusText localizes a status message
func (ui *RootUI) statusText(m controller.StatusMessage) string {
	l := ui.localization
	switch m.Kind {
	case controller.StatusStarting:
		return l.GetText(KeyStatusStarting)
	case controller.StatusDownloading:
		return fmt.Sprintf(l.GetText(KeyStatusTitle), m.Detail)
	case controller.StatusCompleted:
		var text string
		if m.MediaKind == model.MediaKindAudio {
			text = l.GetText(KeyStatusAudioDone)
		} else {
			text = fmt.Sprintf(l.GetText(KeyStatusVideoDone), ui.qualityLabel(m.Quality))
		}
		if m.Size > 0 {
			text += fmt.Sprintf(SizeSuffixFormat, humanize.Bytes(uint64(m.Size)))
		}
		return IconSuccess + " " + text
	case controller.StatusFailed:
		return IconError + " " + fmt.Sprintf(l.GetText(KeyStatusFailed), m.Detail)
	case controller.StatusMissingURL:
		return IconWarning + " " + l.GetText(KeyPleaseEnterURL)
	case controller.StatusBusy:
		return IconWarning + " " + l.GetText(KeyStatusBusy)
	default:
		return m.String()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// onShowHistory shows recent downloads
func (ui *RootUI) onShowHistory() {
	if ui.history == nil {
		dialog.ShowInformation(ui.localization.GetText(KeyHistory), ui.localization.GetText(KeyNoHistory), ui.window)
		return
	}

	entries, err := ui.history.Recent(ui.ctx, HistoryLimit)
	if err != nil {
		logctx.LoggerFromContext(ui.ctx).Error("failed to load history", "err", err)
		dialog.ShowError(err, ui.window)
		return
	}
	ShowHistoryDialog(ui.ctx, ui.window, ui.localization, entries)
}
