package ui

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/galeria/internal/config"
	"github.com/ytget/galeria/internal/event"
	"github.com/ytget/galeria/internal/gallery"
	"github.com/ytget/galeria/internal/logger"
	"github.com/ytget/galeria/internal/model"
	"github.com/ytget/galeria/internal/platform"
	"github.com/ytget/galeria/internal/thumbnail"
)

// EventSource delivers bus events on the UI goroutine. *event.Broker
// implements it.
type EventSource interface {
	ConnectToGui(topic event.Topic, fn interface{}) error
}

// ScanStarter starts scan sessions. *scan.Scanner implements it.
type ScanStarter interface {
	Start(folders []string) string
}

// FolderWatcher follows saved folders. *watch.Watcher implements it.
type FolderWatcher interface {
	SetFolders(folders []string) error
}

// Dependencies are the services the gallery screen drives
type Dependencies struct {
	Events     EventSource
	Scanner    ScanStarter
	Thumbnails thumbnail.Renderer
	Watcher    FolderWatcher // nil disables watching

	// Dispatch runs fn on the UI goroutine; defaults to fyne.Do
	Dispatch func(fn func())

	// OpenFile and RevealFile default to the platform helpers
	OpenFile   func(path string) error
	RevealFile func(path string) error
}

// RootUI is the gallery screen: folder panel, filter and thumbnail grid
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	log          *logger.Logger
	deps         Dependencies
	mobile       *MobileUI

	filterEntry *widget.Entry
	folderPanel *FolderPanel
	grid        *ThumbnailGrid
	viewer      *Viewer

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationSeq       int

	allEntries   []model.ImageEntry
	visible      []model.ImageEntry
	query        string
	session      string
	scanProblems int

	rescanMu    sync.Mutex
	rescanTimer *time.Timer
}

// NewRootUI creates the gallery screen, subscribes it to scan events and
// starts the first scan
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, deps Dependencies, log *logger.Logger) (*RootUI, error) {
	if log == nil {
		log = logger.Nop()
	}
	if deps.Dispatch == nil {
		deps.Dispatch = fyne.Do
	}
	if deps.OpenFile == nil {
		deps.OpenFile = platform.OpenFileWithDefaultApp
	}
	if deps.RevealFile == nil {
		deps.RevealFile = platform.OpenFileInManager
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		log:          log,
		deps:         deps,
		mobile:       NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	if err := ui.subscribe(); err != nil {
		return nil, err
	}

	ui.log.Info("UI", "gallery screen ready", nil)
	ui.Rescan()
	return ui, nil
}

func (ui *RootUI) subscribe() error {
	handlers := []struct {
		topic event.Topic
		fn    interface{}
	}{
		{event.Scan, ui.onScanEvent},
		{event.FolderChanged, ui.onFolderChanged},
	}
	for _, h := range handlers {
		if err := ui.deps.Events.ConnectToGui(h.topic, h.fn); err != nil {
			return fmt.Errorf("connect gallery screen: %w", err)
		}
	}
	return nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.filterEntry = widget.NewEntry()
	ui.filterEntry.SetPlaceHolder(ui.localization.GetText(KeyFilterPlaceholder))
	ui.filterEntry.OnChanged = ui.onFilterChanged

	addBtn := ui.mobile.ToolbarButton(IconAdd, ui.onAddFolder)
	settingsBtn := ui.mobile.ToolbarButton(IconSettings, ui.onShowSettings)
	toolbar := container.NewBorder(nil, nil, container.NewHBox(addBtn, settingsBtn), nil, ui.filterEntry)

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, nil, ui.notificationSpinner, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.folderPanel = NewFolderPanel(ui.localization, ui.onAddFolder, ui.onRemoveFolder, ui.onFolderSelected)

	ui.grid = NewThumbnailGrid(ui.deps.Thumbnails, float32(ui.settings.GetMinThumbnailSize()), ui.deps.Dispatch)
	ui.grid.OnSelected = ui.onThumbnailSelected
	ui.grid.SetEmptyText(ui.localization.GetText(KeyNoFolders))

	ui.viewer = NewViewer(ui.window, ui.deps.Thumbnails, ui.localization, ui.log, ui.deps.Dispatch)
	ui.viewer.SetActions(ui.onOpenFile, ui.onRevealFile)

	content := container.NewBorder(
		container.NewVBox(toolbar, ui.notificationContainer),
		nil,
		nil,
		nil,
		ui.mobile.ArrangeMain(ui.folderPanel.Container(), ui.grid),
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile),
		fyne.NewMenuItem(ui.localization.GetText(KeyAddFolder), ui.onAddFolder),
		fyne.NewMenuItem(ui.localization.GetText(KeyAddPictures), ui.onAddPicturesFolder),
		fyne.NewMenuItem(ui.localization.GetText(KeyRescan), ui.Rescan),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings),
	)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// Rescan starts a new scan session over the saved folders, dropping the
// results of any session still running
func (ui *RootUI) Rescan() {
	folders := ui.settings.Folders().Load()

	ui.allEntries = nil
	ui.scanProblems = 0
	ui.folderPanel.SetFolders(folders)
	ui.updateWatcher(folders)

	if len(folders) == 0 {
		ui.session = ""
		ui.applyFilter()
		ui.hideNotification()
		return
	}

	ui.folderPanel.MarkScanning()
	ui.session = ui.deps.Scanner.Start(folders)
	ui.applyFilter()
	ui.showNotification(ui.localization.GetText(KeyScanning), true)
}

// Entries returns every image found by the current session
func (ui *RootUI) Entries() []model.ImageEntry {
	return ui.allEntries
}

// VisibleEntries returns the images shown after filtering
func (ui *RootUI) VisibleEntries() []model.ImageEntry {
	return ui.visible
}

// onScanEvent applies one step of the current scan session
func (ui *RootUI) onScanEvent(e event.ScanEvent) {
	if e.Session != ui.session {
		return
	}

	switch e.Kind {
	case event.KindImageFound:
		ui.onImageFound(e)
	case event.KindFolderScanned:
		ui.onFolderScanned(e)
	case event.KindFolderMissing:
		ui.onFolderMissing(e)
	case event.KindScanFinished:
		ui.onScanFinished(e)
	}
}

func (ui *RootUI) onImageFound(e event.ScanEvent) {
	ui.allEntries = append(ui.allEntries, e.Entry)
	needle, filtered := gallery.Needle(ui.query)
	switch {
	case !filtered:
		ui.visible = ui.allEntries
	case gallery.Matches(e.Entry, needle):
		ui.visible = append(ui.visible, e.Entry)
	default:
		return
	}
	ui.grid.SetEntries(ui.visible)
}

func (ui *RootUI) onFolderScanned(e event.ScanEvent) {
	ui.folderPanel.SetState(e.State)
	if e.State.Status == model.FolderStatusError {
		ui.scanProblems++
		ui.showNotification(ui.localization.GetText(KeyFolderError)+": "+e.State.Path, false)
	}
}

func (ui *RootUI) onFolderMissing(e event.ScanEvent) {
	ui.scanProblems++
	ui.folderPanel.SetState(e.State)
	ui.showNotification(ui.localization.GetText(KeyFolderMissing)+": "+e.State.Path, false)
}

func (ui *RootUI) onScanFinished(e event.ScanEvent) {
	if e.Canceled {
		return
	}

	ui.log.Info("UI", "scan results shown", map[string]interface{}{
		"session": e.Session,
		"images":  e.Images,
	})
	ui.applyFilter()
	if ui.scanProblems == 0 {
		ui.showTransientNotification(fmt.Sprintf(ui.localization.GetText(KeyImagesFound), e.Images))
	}
}

func (ui *RootUI) onFolderChanged(e event.FolderChangedEvent) {
	ui.log.Debug("UI", "folder changed on disk", map[string]interface{}{"path": e.Path})
	ui.scheduleRescan()
}

// scheduleRescan coalesces bursts of file events into one rescan
func (ui *RootUI) scheduleRescan() {
	ui.rescanMu.Lock()
	defer ui.rescanMu.Unlock()

	if ui.rescanTimer != nil {
		ui.rescanTimer.Stop()
	}
	ui.rescanTimer = time.AfterFunc(RescanDebounce, func() {
		ui.deps.Dispatch(ui.Rescan)
	})
}

// Close stops pending timers
func (ui *RootUI) Close() {
	ui.rescanMu.Lock()
	defer ui.rescanMu.Unlock()
	if ui.rescanTimer != nil {
		ui.rescanTimer.Stop()
		ui.rescanTimer = nil
	}
}

func (ui *RootUI) updateWatcher(folders []string) {
	if ui.deps.Watcher == nil {
		return
	}
	if !ui.settings.GetWatchFolders() {
		folders = nil
	}
	if err := ui.deps.Watcher.SetFolders(folders); err != nil {
		ui.log.Debug("UI", "some folders are not watched", map[string]interface{}{"error": err.Error()})
	}
}

func (ui *RootUI) onFilterChanged(query string) {
	ui.query = query
	ui.applyFilter()
	ui.grid.ScrollToTop()
}

// applyFilter recomputes the visible entries from the full list
func (ui *RootUI) applyFilter() {
	ui.visible = gallery.Filter(ui.allEntries, ui.query)

	switch {
	case len(ui.folderPanel.States()) == 0:
		ui.grid.SetEmptyText(ui.localization.GetText(KeyNoFolders))
	case len(ui.allEntries) > 0:
		ui.grid.SetEmptyText(ui.localization.GetText(KeyNoMatches))
	default:
		ui.grid.SetEmptyText("")
	}
	ui.grid.SetEntries(ui.visible)
}

func (ui *RootUI) onThumbnailSelected(index int) {
	ui.viewer.Show(ui.visible, index)
}

func (ui *RootUI) onAddFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.log.Error("UI", "folder picker failed", err, nil)
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.AddFolder(uri.Path())
	}, ui.window)
}

func (ui *RootUI) onAddPicturesFolder() {
	dir, err := platform.GetHomePicturesDir()
	if err != nil {
		ui.log.Error("UI", "pictures folder lookup failed", err, nil)
		dialog.ShowError(err, ui.window)
		return
	}
	if !platform.DirectoryExists(dir) {
		ui.showNotification(ui.localization.GetText(KeyFolderMissing)+": "+dir, false)
		return
	}
	ui.AddFolder(dir)
}

// AddFolder saves folder and rescans. Adding a saved folder only shows a
// notification.
func (ui *RootUI) AddFolder(folder string) {
	added, err := ui.settings.Folders().Add(folder)
	if err != nil {
		ui.log.Error("UI", "saving folder failed", err, map[string]interface{}{"path": folder})
		dialog.ShowError(err, ui.window)
		return
	}
	if !added {
		ui.showTransientNotification(ui.localization.GetText(KeyFolderExists))
		return
	}

	ui.log.Info("UI", "folder added", map[string]interface{}{"path": folder})
	ui.Rescan()
}

func (ui *RootUI) onRemoveFolder(folder string) {
	removed, err := ui.settings.Folders().Remove(folder)
	if err != nil {
		ui.log.Error("UI", "removing folder failed", err, map[string]interface{}{"path": folder})
		dialog.ShowError(err, ui.window)
		return
	}
	if removed {
		ui.log.Info("UI", "folder removed", map[string]interface{}{"path": folder})
		ui.Rescan()
	}
}

// onFolderSelected narrows the grid to the folder's name
func (ui *RootUI) onFolderSelected(folder string) {
	ui.filterEntry.SetText(filepath.Base(folder))
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.grid.SetMinCellSize(float32(ui.settings.GetMinThumbnailSize()))
	ui.updateWatcher(ui.settings.Folders().Load())
	ui.showTransientNotification(ui.localization.GetText(KeySettingsSaved))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.filterEntry.SetPlaceHolder(ui.localization.GetText(KeyFilterPlaceholder))
	ui.folderPanel.RefreshTexts()
	ui.viewer.RefreshTexts()
	ui.applyFilter()
}

func (ui *RootUI) onOpenFile(path string) {
	go ui.runFileAction("open", path, ui.deps.OpenFile)
}

func (ui *RootUI) onRevealFile(path string) {
	go ui.runFileAction("reveal", path, ui.deps.RevealFile)
}

// runFileAction runs an OS file action off the UI goroutine
func (ui *RootUI) runFileAction(action, path string, fn func(string) error) {
	if err := fn(path); err != nil {
		ui.log.Error("UI", "file action failed", err, map[string]interface{}{
			"action": action,
			"path":   path,
		})
		ui.deps.Dispatch(func() {
			ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
		})
	}
}

// showNotification displays a message in the notification panel under the
// toolbar. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationSeq++
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
		ui.notificationSpinner.Start()
	} else {
		ui.notificationSpinner.Stop()
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// showTransientNotification shows message and hides it after
// NotificationAutoHide unless another message replaced it
func (ui *RootUI) showTransientNotification(message string) {
	ui.showNotification(message, false)
	seq := ui.notificationSeq
	time.AfterFunc(NotificationAutoHide, func() {
		ui.deps.Dispatch(func() {
			if ui.notificationSeq == seq {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Stop()
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// NotificationText returns the message in the notification panel, or "" when
// it is hidden
func (ui *RootUI) NotificationText() string {
	if !ui.notificationContainer.Visible() {
		return ""
	}
	return ui.notificationLabel.Text
}
