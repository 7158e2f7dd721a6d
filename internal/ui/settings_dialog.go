package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytgrab/internal/config"
)

// SettingsDialog edits the interface preferences. The destination folder and
// format choices live on the main form.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	languageCodes  []string
	languageSelect *widget.Select
	autoRevealChk  *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved may be nil.
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(window, settings, localization, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization
	labels := sd.settings.GetLanguageOptions()

	sd.languageCodes = make([]string, 0, len(labels))
	for code := range labels {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)

	options := make([]string, len(sd.languageCodes))
	for i, code := range sd.languageCodes {
		options[i] = labels[code]
	}
	sd.languageSelect = widget.NewSelect(options, nil)
	sd.autoRevealChk = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(IconLanguage+" "+l.GetText(KeyLanguage)),
		sd.languageSelect,
		widget.NewSeparator(),
		sd.autoRevealChk,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}
	sd.autoRevealChk.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 && idx < len(sd.languageCodes) {
		lang := sd.languageCodes[idx]
		sd.settings.SetLanguage(lang)
		sd.localization.SetLanguage(lang)
	}
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealChk.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
