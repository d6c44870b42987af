package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/rec-viewer/internal/logging"
	"github.com/ytget/rec-viewer/internal/model"
)

// Row sizing
const (
	RowMinWidth    float32 = 320
	RowMinHeight   float32 = 40
	SizeLabelWidth float32 = 150
)

// TaskRow is a compact row of the downloads list
type TaskRow struct {
	widget.BaseWidget

	task         *model.DownloadTask
	localization *Localization

	titleLabel    *widget.Label
	statusLabel   *widget.Label
	sizeLabel     *widget.Label
	progressLabel *widget.Label

	revealBtn *widget.Button
	stopBtn   *widget.Button
	removeBtn *widget.Button

	onReveal func(filePath string)
	onStop   func(taskID string)
	onRemove func(taskID string)
}

// NewTaskRow creates a row for a task snapshot
func NewTaskRow(task *model.DownloadTask, localization *Localization) *TaskRow {
	tr := &TaskRow{
		task:         task,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(onReveal func(filePath string), onStop func(taskID string), onRemove func(taskID string)) {
	tr.onReveal = onReveal
	tr.onStop = onStop
	tr.onRemove = onRemove
}

// Task returns the snapshot the row shows
func (tr *TaskRow) Task() *model.DownloadTask {
	return tr.task
}

// UpdateTask replaces the snapshot and redraws the row
func (tr *TaskRow) UpdateTask(task *model.DownloadTask) {
	if task == nil {
		logging.Default.Warn("UpdateTask called with nil task", "id", tr.task.ID)
		return
	}
	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.sizeLabel = widget.NewLabel("")
	tr.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}
	tr.progressLabel = widget.NewLabel("")
	tr.progressLabel.Alignment = fyne.TextAlignTrailing

	tr.revealBtn = widget.NewButton(IconFolder+" "+tr.localization.GetText(KeyReveal), func() {
		if tr.onReveal != nil && tr.task.OutputPath != "" {
			tr.onReveal(tr.task.OutputPath)
		}
	})
	tr.stopBtn = widget.NewButton(IconStop+" "+tr.localization.GetText(KeyStop), func() {
		if tr.onStop != nil {
			tr.onStop(tr.task.ID)
		}
	})
	tr.removeBtn = widget.NewButton(IconClose+" "+tr.localization.GetText(KeyRemove), func() {
		if tr.onRemove != nil {
			tr.onRemove(tr.task.ID)
		}
	})
}

func (tr *TaskRow) updateFromTask() {
	title := strings.Join(strings.Fields(tr.task.GetDisplayTitle()), " ")
	tr.titleLabel.SetText(title)

	switch tr.task.Status {
	case model.TaskStatusError:
		tr.statusLabel.Importance = widget.DangerImportance
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
	case model.TaskStatusDownloading:
		tr.statusLabel.Importance = widget.HighImportance
	default:
		tr.statusLabel.Importance = widget.MediumImportance
	}
	tr.statusLabel.SetText(tr.task.Status.String())

	size := tr.task.GetSizeString()
	if tr.task.Status == model.TaskStatusError && tr.task.LastError != "" {
		size = tr.task.LastError
	}
	tr.sizeLabel.SetText(size)

	percent := tr.task.Percent()
	if percent < 0 || tr.task.Status == model.TaskStatusCompleted {
		tr.progressLabel.SetText(DashPlaceholder)
	} else {
		tr.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, percent))
	}

	tr.updateButtons()
}

func (tr *TaskRow) updateButtons() {
	if tr.task.Status == model.TaskStatusCompleted && tr.task.OutputPath != "" {
		tr.revealBtn.Enable()
	} else {
		tr.revealBtn.Disable()
	}
	if tr.task.Status.IsActive() && tr.task.Status != model.TaskStatusStopping {
		tr.stopBtn.Enable()
	} else {
		tr.stopBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	r := &taskRowRenderer{taskRow: tr}
	r.createLayout()
	return r
}

type taskRowRenderer struct {
	taskRow *TaskRow
	layout  *fyne.Container
}

func (r *taskRowRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

func (r *taskRowRenderer) MinSize() fyne.Size {
	return r.layout.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

func (r *taskRowRenderer) Refresh() {
	r.layout.Refresh()
}

func (r *taskRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

func (r *taskRowRenderer) Destroy() {}

func (r *taskRowRenderer) createLayout() {
	tr := r.taskRow

	// fixed width via a transparent spacer underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(SizeLabelWidth, tr.sizeLabel),
		fixedWidth(PercentLabelWidth, tr.progressLabel),
		fixedWidth(StatusLabelWidth, tr.statusLabel),
	)
	actions := container.NewHBox(tr.revealBtn, tr.stopBtn, tr.removeBtn)
	right := container.NewBorder(nil, nil, nil, actions, info)

	r.layout = container.NewVBox(
		container.NewBorder(nil, nil, nil, right, tr.titleLabel),
		widget.NewSeparator(),
	)
}
