package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
)

// settingsDialog edits the persisted preferences. Server URL and poll
// interval changes take effect on the next signin or refresh cycle; the
// language applies after the next view switch.
type settingsDialog struct {
	ui     *RootUI
	dialog *dialog.ConfirmDialog

	serverEntry    *widget.Entry
	pollEntry      *widget.Entry
	languageSelect *widget.Select
}

func newSettingsDialog(ui *RootUI) *settingsDialog {
	sd := &settingsDialog{ui: ui}
	sd.createUI()
	return sd
}

// Show displays the settings dialog with current values loaded.
func (sd *settingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *settingsDialog) createUI() {
	sd.serverEntry = widget.NewEntry()
	sd.serverEntry.SetPlaceHolder("https://...")

	sd.pollEntry = widget.NewEntry()
	sd.pollEntry.SetPlaceHolder("5")

	languageOptions := []string{}
	for code := range sd.ui.localization.LanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.ui.T(KeyServerURL)),
		sd.serverEntry,
		widget.NewLabel(sd.ui.T(KeyPollMinutes)),
		sd.pollEntry,
		widget.NewLabel(IconLanguage+" "+sd.ui.T(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		IconSettings+" "+sd.ui.T(KeySettings),
		sd.ui.T(KeySave), sd.ui.T(KeyCancel),
		form, sd.onConfirm, sd.ui.window)
}

func (sd *settingsDialog) loadCurrentSettings() {
	sd.serverEntry.SetText(sd.ui.settings.APIBaseURL())
	sd.pollEntry.SetText(strconv.Itoa(int(sd.ui.settings.PollInterval().Minutes())))
	sd.languageSelect.SetSelected(sd.ui.settings.Language())
}

func (sd *settingsDialog) onConfirm(save bool) {
	if !save {
		return
	}

	if url := sd.serverEntry.Text; url != "" {
		sd.ui.settings.SetAPIBaseURL(url)
	}
	if minutes, err := strconv.Atoi(sd.pollEntry.Text); err == nil && minutes > 0 {
		sd.ui.settings.SetPollMinutes(minutes)
	}
	if lang := sd.languageSelect.Selected; lang != "" {
		sd.ui.settings.SetLanguage(lang)
		sd.ui.localization.SetLanguage(lang)
	}

	sd.ui.notes.Push(sd.ui.T(KeySettingsSaved), notify.KindSuccess)
}
