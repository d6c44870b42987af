package ui

import (
	"errors"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/rec-viewer/internal/config"
	"github.com/ytget/rec-viewer/internal/model"
)

var errInvalidWebViewerURL = errors.New("must be an absolute http(s) URL")

var timestampFormatOptions = []string{
	model.TimestampFormatUTC.String(),
	model.TimestampFormatLocal.String(),
	model.TimestampFormatUnixEpoch.String(),
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// onSaved is called after the values were stored
	onSaved func()

	downloadDirEntry   *widget.Entry
	maxParallelEntry   *widget.Entry
	webViewerEntry     *widget.Entry
	presentationSelect *widget.Select
	timestampSelect    *widget.Select
	languageSelect     *widget.Select
	autoRevealCheck    *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder(strconv.Itoa(config.MinMaxParallel) + "-" + strconv.Itoa(config.MaxMaxParallel))

	sd.webViewerEntry = widget.NewEntry()
	sd.webViewerEntry.SetPlaceHolder(config.DefaultWebViewerURL)
	sd.webViewerEntry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		if config.ParseWebViewerURL(s) == nil {
			return errInvalidWebViewerURL
		}
		return nil
	}

	sd.presentationSelect = widget.NewSelect(sd.settings.GetPresentationOptions(), nil)
	sd.timestampSelect = widget.NewSelect(timestampFormatOptions, nil)

	languageLabels := sd.settings.GetLanguageOptions()
	languageOptions := make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	sd.autoRevealCheck = widget.NewCheck(t(KeyAutoReveal), nil)

	restartNote := widget.NewLabel(t(KeyRestartRequired))
	restartNote.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabel(t(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(t(KeyMaxParallel)+":"),
		sd.maxParallelEntry,

		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyWebViewerURL)+":"),
		sd.webViewerEntry,

		widget.NewLabel(t(KeyPresentation)+":"),
		sd.presentationSelect,
		restartNote,

		widget.NewLabel(t(KeyTimestampFormat)+":"),
		sd.timestampSelect,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelDownloads()))
	sd.webViewerEntry.SetText(sd.settings.GetWebViewerURLString())
	sd.presentationSelect.SetSelected(sd.settings.GetPresentation())
	sd.timestampSelect.SetSelected(sd.settings.GetTimestampFormat().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the form values. Invalid values keep the stored ones.
func (sd *SettingsDialog) apply() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	if maxParallel, err := strconv.Atoi(sd.maxParallelEntry.Text); err == nil {
		sd.settings.SetMaxParallelDownloads(maxParallel)
	}

	if sd.webViewerEntry.Validate() == nil {
		sd.settings.SetWebViewerURL(sd.webViewerEntry.Text)
	}

	if sd.presentationSelect.Selected != "" {
		sd.settings.SetPresentation(sd.presentationSelect.Selected)
	}

	if format, err := model.ParseTimestampFormat(sd.timestampSelect.Selected); err == nil {
		sd.settings.SetTimestampFormat(format)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)
}
