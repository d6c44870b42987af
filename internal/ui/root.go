package ui

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/rec-viewer/internal/config"
	"github.com/ytget/rec-viewer/internal/download"
	"github.com/ytget/rec-viewer/internal/logging"
	"github.com/ytget/rec-viewer/internal/model"
	"github.com/ytget/rec-viewer/internal/platform"
	"github.com/ytget/rec-viewer/internal/share"
)

// Options configure the shell
type Options struct {
	Workspace    *config.Workspace
	Presentation share.Presentation

	// Downloads is the local download queue shown in the downloads list.
	// It is nil when files are handed to the browser.
	Downloads download.Downloader

	// Downloader receives share dialog downloads. Defaults to Downloads.
	Downloader share.Downloader

	// WebViewerURL overrides the stored web viewer address when set
	WebViewerURL *url.URL
}

// displayChoice is one entry of the view selector
type displayChoice struct {
	label string
	mode  model.DisplayMode
}

// localizedText re-applies a translation when the language changes
type localizedText struct {
	key   string
	apply func(string)
}

// RootUI is the main window: a small recording viewer around the share
// dialog. It owns the application state the dialog reads.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	logger       *log.Logger

	workspace    *config.Workspace
	displayMode  model.DisplayMode
	selection    model.Selection
	webViewerURL *url.URL

	modal       *share.Modal
	shareDialog *ShareDialog
	shareButton *ShareButton

	downloads download.Downloader
	tasks     []*model.DownloadTask
	taskList  *widget.List
	emptyList *widget.Label

	modeSelect      *widget.Select
	modeChoices     []displayChoice
	recordingSelect *widget.Select
	timelineLabel   *widget.Label
	timeSlider      *widget.Slider
	timeValue       *widget.Label
	loopFrom        *widget.Slider
	loopTo          *widget.Slider
	loopValue       *widget.Label
	selectionEntry  *widget.Entry

	texts []localizedText

	// syncing suppresses widget callbacks while widgets follow the model
	syncing bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, opts Options) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	workspace := opts.Workspace
	if workspace == nil {
		workspace = &config.Workspace{
			Store:        model.NewStoreHub(),
			TimeControls: make(map[string]*model.TimeControl),
			DisplayMode:  model.LocalRecordingsMode(),
		}
	}

	shareDownloader := opts.Downloader
	if shareDownloader == nil && opts.Downloads != nil {
		shareDownloader = opts.Downloads
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(fyne.CurrentDevice()),
		logger:       logging.With("ui"),
		workspace:    workspace,
		displayMode:  workspace.DisplayMode,
		webViewerURL: opts.WebViewerURL,
		downloads:    opts.Downloads,
	}
	ui.modal = share.NewModal(opts.Presentation, shareDownloader, app.Clipboard())

	window.SetTitle(localization.GetText(KeyAppTitle))

	if ui.downloads != nil {
		ui.downloads.SetUpdateCallback(ui.onTaskUpdate)
	}

	ui.setupUI()
	ui.syncFromModel()
	return ui
}

// ShareContext returns the state the share dialog derives its link from
func (ui *RootUI) ShareContext() share.Context {
	return share.Context{
		Store:           ui.workspace.Store,
		DisplayMode:     ui.displayMode,
		TimeControl:     ui.activeTimeControl(),
		Selection:       ui.selection,
		TimestampFormat: ui.settings.GetTimestampFormat(),
	}
}

// WebViewerURL returns the prefix of full links
func (ui *RootUI) WebViewerURL() *url.URL {
	if ui.webViewerURL != nil {
		return ui.webViewerURL
	}
	return ui.settings.GetWebViewerURL()
}

// Modal returns the share dialog state
func (ui *RootUI) Modal() *share.Modal {
	return ui.modal
}

func (ui *RootUI) activeTimeControl() *model.TimeControl {
	rec, ok := ui.workspace.Store.Active()
	if !ok {
		return nil
	}
	return ui.workspace.TimeControls[rec.ID]
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.shareDialog = NewShareDialog(ui.window, ui.modal, ui, ui.localization, ui.mobile)
	ui.shareButton = NewShareButton(ui.window.Canvas(), ui.modal, ui, ui.shareDialog)

	ui.modeChoices = ui.displayChoices()
	ui.modeSelect = widget.NewSelect(choiceLabels(ui.modeChoices), ui.onDisplayModeSelected)

	ui.recordingSelect = widget.NewSelect(nil, ui.onRecordingSelected)
	ui.texts = append(ui.texts, localizedText{KeyNoRecording, func(s string) { ui.recordingSelect.PlaceHolder = s }})
	for _, rec := range ui.workspace.Store.Recordings() {
		ui.recordingSelect.Options = append(ui.recordingSelect.Options, rec.ID)
	}

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.label(KeyDisplayMode), ui.modeSelect, ui.label(KeyRecording)),
		ui.shareButton.Object(),
		ui.recordingSelect,
	)

	content := container.NewBorder(
		container.NewVBox(topPanel, widget.NewSeparator(), ui.createTimePanel(), widget.NewSeparator()),
		nil,
		nil,
		nil,
		ui.createDownloadsPanel(),
	)

	ui.window.SetContent(content)
	ui.applyTexts()
}

func (ui *RootUI) createTimePanel() fyne.CanvasObject {
	ui.timelineLabel = widget.NewLabel("")

	ui.timeSlider = widget.NewSlider(TimelineSliderMin, TimelineSliderMax)
	ui.timeSlider.OnChanged = func(v float64) {
		if ui.syncing {
			return
		}
		if tc := ui.activeTimeControl(); tc != nil {
			tc.SetTime(model.TimeReal(v))
			ui.syncFromModel()
		}
	}
	ui.timeValue = widget.NewLabel(DashPlaceholder)
	clearTime := ui.button(KeyClear, func() {
		if tc := ui.activeTimeControl(); tc != nil {
			tc.ClearTime()
			ui.syncFromModel()
		}
	})

	ui.loopFrom = widget.NewSlider(TimelineSliderMin, TimelineSliderMax)
	ui.loopTo = widget.NewSlider(TimelineSliderMin, TimelineSliderMax)
	onLoop := func(float64) {
		if ui.syncing {
			return
		}
		if tc := ui.activeTimeControl(); tc != nil {
			tc.SetLoopSelection(model.TimeRangeF{Min: model.TimeReal(ui.loopFrom.Value), Max: model.TimeReal(ui.loopTo.Value)})
			ui.syncFromModel()
		}
	}
	ui.loopFrom.OnChanged = onLoop
	ui.loopTo.OnChanged = onLoop
	ui.loopValue = widget.NewLabel(DashPlaceholder)
	clearLoop := ui.button(KeyClear, func() {
		if tc := ui.activeTimeControl(); tc != nil {
			tc.ClearLoopSelection()
			ui.syncFromModel()
		}
	})

	ui.selectionEntry = widget.NewEntry()
	ui.texts = append(ui.texts, localizedText{KeySelectionHint, ui.selectionEntry.SetPlaceHolder})
	ui.selectionEntry.OnChanged = func(text string) {
		ui.selection = parseSelection(text)
		ui.refreshShare()
	}

	row := func(key string, value fyne.CanvasObject, right fyne.CanvasObject, center fyne.CanvasObject) fyne.CanvasObject {
		return container.NewBorder(nil, nil, container.NewHBox(ui.label(key), value), right, center)
	}

	return container.NewVBox(
		container.NewHBox(ui.label(KeyTimeline), ui.timelineLabel),
		row(KeyTimeCursor, ui.timeValue, clearTime, ui.timeSlider),
		row(KeyLoopSelection, ui.loopValue, clearLoop, container.NewGridWithColumns(2, ui.loopFrom, ui.loopTo)),
		container.NewBorder(nil, nil, ui.label(KeySelection), nil, ui.selectionEntry),
	)
}

func (ui *RootUI) createDownloadsPanel() fyne.CanvasObject {
	if ui.downloads == nil {
		return container.NewVBox()
	}

	ui.taskList = widget.NewList(
		func() int { return len(ui.tasks) },
		func() fyne.CanvasObject { return ui.createTaskItem() },
		ui.updateTaskItem,
	)
	ui.emptyList = ui.label(KeyNoDownloads)
	ui.emptyList.Alignment = fyne.TextAlignCenter

	header := ui.label(KeyDownloads)
	header.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewBorder(header, nil, nil, nil, container.NewStack(ui.emptyList, ui.taskList))
}

// label creates a label whose text follows the language
func (ui *RootUI) label(key string) *widget.Label {
	l := widget.NewLabel(ui.localization.GetText(key))
	ui.texts = append(ui.texts, localizedText{key, l.SetText})
	return l
}

// button creates a button whose text follows the language
func (ui *RootUI) button(key string, tapped func()) *widget.Button {
	b := widget.NewButton(ui.localization.GetText(key), tapped)
	ui.texts = append(ui.texts, localizedText{key, b.SetText})
	return b
}

func (ui *RootUI) applyTexts() {
	for _, t := range ui.texts {
		t.apply(ui.localization.GetText(t.key))
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
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

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.applyTexts()
	ui.recordingSelect.Refresh()
	if ui.taskList != nil {
		ui.taskList.Refresh()
	}
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies everything that does not need a restart
func (ui *RootUI) onSettingsSaved() {
	if ui.downloads != nil {
		ui.downloads.SetDownloadDirectory(ui.settings.GetDownloadDirectory())
		ui.downloads.SetMaxParallelDownloads(ui.settings.GetMaxParallelDownloads())
	}
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
	ui.syncFromModel()
}

// displayChoices lists the screens that can be switched to from the
// current workspace
func (ui *RootUI) displayChoices() []displayChoice {
	choices := []displayChoice{
		{model.DisplayLocalRecordings.String(), model.LocalRecordingsMode()},
	}
	seen := map[model.DisplayMode]bool{model.LocalRecordingsMode(): true}
	add := func(label string, mode model.DisplayMode) {
		if seen[mode] {
			return
		}
		seen[mode] = true
		choices = append(choices, displayChoice{label, mode})
	}

	add(ui.displayMode.Kind.String()+MiddleDotSeparator+displayDetail(ui.displayMode), ui.displayMode)
	for _, rec := range ui.workspace.Store.Recordings() {
		if rec.Source.Kind != model.SourceRedapPartition {
			continue
		}
		add(model.DisplayRedapServer.String()+MiddleDotSeparator+rec.Source.Origin, model.RedapServerMode(rec.Source.Origin))
		add(model.DisplayRedapEntry.String()+MiddleDotSeparator+rec.Source.DatasetID, model.RedapEntryMode(rec.Source.Origin, rec.Source.DatasetID))
	}
	add("Examples", model.RedapServerMode(model.ExamplesOrigin))
	add(model.DisplaySettings.String(), model.SettingsMode())
	return choices
}

func displayDetail(mode model.DisplayMode) string {
	switch {
	case mode.EntryID != "":
		return mode.EntryID
	case mode.Origin != "":
		return mode.Origin
	default:
		return DashPlaceholder
	}
}

func choiceLabels(choices []displayChoice) []string {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.label
	}
	return labels
}

func (ui *RootUI) onDisplayModeSelected(label string) {
	if ui.syncing {
		return
	}
	for _, c := range ui.modeChoices {
		if c.label == label {
			ui.displayMode = c.mode
			break
		}
	}
	ui.syncFromModel()
}

func (ui *RootUI) onRecordingSelected(id string) {
	if ui.syncing {
		return
	}
	if err := ui.workspace.Store.SetActive(id); err != nil {
		ui.logger.Warn("Failed to switch recording", "id", id, "err", err)
		return
	}
	ui.syncFromModel()
}

// parseSelection reads comma separated entity paths
func parseSelection(text string) model.Selection {
	var sel model.Selection
	for _, item := range strings.Split(text, ",") {
		if item = strings.TrimSpace(item); item != "" {
			sel.Items = append(sel.Items, item)
		}
	}
	return sel
}

// syncFromModel makes every widget follow the workspace state
func (ui *RootUI) syncFromModel() {
	ui.syncing = true
	defer func() { ui.syncing = false }()

	for _, c := range ui.modeChoices {
		if c.mode == ui.displayMode {
			ui.modeSelect.SetSelected(c.label)
			break
		}
	}
	if rec, ok := ui.workspace.Store.Active(); ok {
		ui.recordingSelect.SetSelected(rec.ID)
	}

	format := ui.settings.GetTimestampFormat()
	tc := ui.activeTimeControl()
	if tc == nil {
		ui.timelineLabel.SetText(DashPlaceholder)
		ui.timeValue.SetText(DashPlaceholder)
		ui.loopValue.SetText(DashPlaceholder)
		for _, s := range []*widget.Slider{ui.timeSlider, ui.loopFrom, ui.loopTo} {
			s.Disable()
		}
	} else {
		for _, s := range []*widget.Slider{ui.timeSlider, ui.loopFrom, ui.loopTo} {
			s.Enable()
		}
		ui.timelineLabel.SetText(tc.Timeline().Name + " (" + tc.Timeline().Type.String() + ")")
		ui.syncSliderRange(tc)

		if t, ok := tc.Time(); ok {
			ui.timeSlider.SetValue(float64(t))
		}
		if cell, ok := tc.TimeCell(); ok {
			ui.timeValue.SetText(cell.Format(format))
		} else {
			ui.timeValue.SetText(DashPlaceholder)
		}

		if loop, ok := tc.LoopSelection(); ok {
			ui.loopFrom.SetValue(float64(loop.Min))
			ui.loopTo.SetValue(float64(loop.Max))
		}
		if sel, ok := tc.CurrentTimeSelection(); ok {
			ui.loopValue.SetText(sel.String())
		} else {
			ui.loopValue.SetText(DashPlaceholder)
		}
	}

	ui.refreshShare()
}

// syncSliderRange widens the sliders to cover the current cursor and loop
func (ui *RootUI) syncSliderRange(tc *model.TimeControl) {
	lo, hi := float64(TimelineSliderMin), float64(TimelineSliderMax)
	widen := func(v float64) {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if t, ok := tc.Time(); ok {
		widen(float64(t))
	}
	if loop, ok := tc.LoopSelection(); ok {
		widen(float64(loop.Min))
		widen(float64(loop.Max))
	}
	for _, s := range []*widget.Slider{ui.timeSlider, ui.loopFrom, ui.loopTo} {
		if s.Min != lo || s.Max != hi {
			s.Min, s.Max = lo, hi
			s.Refresh()
		}
	}
}

// refreshShare re-evaluates the share button and the open dialog
func (ui *RootUI) refreshShare() {
	ui.shareButton.Refresh()
	ui.shareDialog.Refresh()
}

func (ui *RootUI) createTaskItem() fyne.CanvasObject {
	row := NewTaskRow(&model.DownloadTask{ID: "placeholder", Status: model.TaskStatusPending}, ui.localization)
	row.SetCallbacks(ui.onRevealFile, ui.onStopTask, ui.onRemoveTask)
	return row
}

func (ui *RootUI) updateTaskItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.tasks) {
		return
	}
	if row, ok := item.(*TaskRow); ok {
		row.UpdateTask(ui.tasks[id])
	}
}

// onTaskUpdate receives task snapshots from download goroutines
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	fyne.Do(func() {
		ui.applyTaskUpdate(task)
	})
}

func (ui *RootUI) applyTaskUpdate(task *model.DownloadTask) {
	completed := false
	found := false
	for i, existing := range ui.tasks {
		if existing.ID == task.ID {
			completed = existing.Status != model.TaskStatusCompleted && task.Status == model.TaskStatusCompleted
			ui.tasks[i] = task
			found = true
			break
		}
	}
	if !found {
		completed = task.Status == model.TaskStatusCompleted
		ui.tasks = append(ui.tasks, task)
	}

	if completed {
		ui.sendCompletionNotification(task)
		if ui.settings.GetAutoRevealOnComplete() && task.OutputPath != "" {
			ui.onRevealFile(task.OutputPath)
		}
	}

	ui.refreshTaskList()
}

func (ui *RootUI) refreshTaskList() {
	if ui.taskList == nil {
		return
	}
	if len(ui.tasks) == 0 {
		ui.emptyList.Show()
	} else {
		ui.emptyList.Hide()
	}
	ui.taskList.Refresh()
}

func (ui *RootUI) sendCompletionNotification(task *model.DownloadTask) {
	ui.app.SendNotification(fyne.NewNotification(
		ui.localization.GetText(KeyDownloadCompleted),
		task.GetDisplayTitle(),
	))
}

func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Error("Failed to reveal file", "path", filePath, "err", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

func (ui *RootUI) onStopTask(taskID string) {
	if err := ui.downloads.StopTask(taskID); err != nil {
		ui.logger.Error("Failed to stop task", "id", taskID, "err", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorStoppingTask)+": "+err.Error()), ui.window.Canvas())
	}
}

func (ui *RootUI) onRemoveTask(taskID string) {
	if err := ui.downloads.RemoveTask(taskID); err != nil {
		ui.logger.Warn("Failed to remove task", "id", taskID, "err", err)
	}
	for i, task := range ui.tasks {
		if task.ID == taskID {
			ui.tasks = append(ui.tasks[:i], ui.tasks[i+1:]...)
			break
		}
	}
	ui.refreshTaskList()
}
