package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/galeria/internal/model"
)

// FolderPanel lists the saved folders with their last scan state
type FolderPanel struct {
	localization *Localization
	folders      []model.FolderState

	header    *widget.Label
	addBtn    *widget.Button
	list      *widget.List
	container *fyne.Container

	onRemove func(path string)
	onSelect func(path string)
}

// NewFolderPanel creates the panel. onAdd runs from the add button, onRemove
// from a row's remove button and onSelect when a row is selected.
func NewFolderPanel(localization *Localization, onAdd func(), onRemove, onSelect func(path string)) *FolderPanel {
	p := &FolderPanel{
		localization: localization,
		onRemove:     onRemove,
		onSelect:     onSelect,
	}

	p.header = widget.NewLabelWithStyle(localization.GetText(KeyFolders), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.addBtn = widget.NewButton(IconAdd, onAdd)
	p.addBtn.Importance = widget.LowImportance

	p.list = widget.NewList(
		func() int { return len(p.folders) },
		func() fyne.CanvasObject { return newFolderRow(p.remove) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(p.folders) {
				return
			}
			obj.(*folderRow).update(p.folders[id])
		},
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(p.folders) && p.onSelect != nil {
			p.onSelect(p.folders[id].Path)
		}
		p.list.UnselectAll()
	}

	p.container = container.NewBorder(
		container.NewBorder(nil, nil, nil, p.addBtn, p.header),
		nil, nil, nil,
		p.list,
	)
	return p
}

// Container returns the panel's canvas object
func (p *FolderPanel) Container() fyne.CanvasObject {
	return p.container
}

// SetFolders replaces the listed folders. Known folders keep their state;
// new ones start as pending.
func (p *FolderPanel) SetFolders(paths []string) {
	known := make(map[string]model.FolderState, len(p.folders))
	for _, state := range p.folders {
		known[state.Path] = state
	}

	folders := make([]model.FolderState, 0, len(paths))
	for _, path := range paths {
		state, ok := known[path]
		if !ok {
			state = model.FolderState{Path: path, Status: model.FolderStatusPending}
		}
		folders = append(folders, state)
	}
	p.folders = folders
	p.list.Refresh()
}

// MarkScanning sets every folder to scanning
func (p *FolderPanel) MarkScanning() {
	for i := range p.folders {
		p.folders[i].Status = model.FolderStatusScanning
		p.folders[i].Error = ""
	}
	p.list.Refresh()
}

// SetState records the scan result of one folder. Unknown paths are ignored.
func (p *FolderPanel) SetState(state model.FolderState) {
	for i := range p.folders {
		if p.folders[i].Path == state.Path {
			p.folders[i] = state
			p.list.RefreshItem(i)
			return
		}
	}
}

// State returns the recorded state of path
func (p *FolderPanel) State(path string) (model.FolderState, bool) {
	for _, state := range p.folders {
		if state.Path == path {
			return state, true
		}
	}
	return model.FolderState{}, false
}

// States returns every listed folder in order
func (p *FolderPanel) States() []model.FolderState {
	return append([]model.FolderState(nil), p.folders...)
}

// RefreshTexts re-reads localized labels
func (p *FolderPanel) RefreshTexts() {
	p.header.SetText(p.localization.GetText(KeyFolders))
	p.list.Refresh()
}

func (p *FolderPanel) remove(path string) {
	if p.onRemove != nil {
		p.onRemove(path)
	}
}

// folderRow is one line of the folder list
type folderRow struct {
	widget.BaseWidget

	path      string
	status    *widget.Label
	name      *widget.Label
	removeBtn *widget.Button
}

func newFolderRow(onRemove func(path string)) *folderRow {
	row := &folderRow{
		status: widget.NewLabel(""),
		name:   widget.NewLabel(""),
	}
	row.name.Truncation = fyne.TextTruncateEllipsis
	row.removeBtn = widget.NewButton(IconRemove, func() {
		if row.path != "" {
			onRemove(row.path)
		}
	})
	row.removeBtn.Importance = widget.LowImportance
	row.ExtendBaseWidget(row)
	return row
}

// CreateRenderer creates the widget renderer
func (r *folderRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.status, r.removeBtn, r.name))
}

func (r *folderRow) update(state model.FolderState) {
	r.path = state.Path
	r.name.SetText(filepath.Base(state.Path))
	r.status.SetText(statusMarker(state))

	if state.Status.IsFailed() {
		r.name.Importance = widget.DangerImportance
	} else {
		r.name.Importance = widget.MediumImportance
	}
	r.name.Refresh()
}

// statusMarker is the short text shown before a folder's name
func statusMarker(state model.FolderState) string {
	switch state.Status {
	case model.FolderStatusMissing:
		return IconMissing
	case model.FolderStatusError:
		return IconError
	case model.FolderStatusReady:
		return fmt.Sprintf(CountFormat, state.Count)
	default:
		return IconFolder
	}
}
