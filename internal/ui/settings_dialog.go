package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/galeria/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 360
)

// thumbnailSizeStep is the slider step of the minimum thumbnail size
const thumbnailSizeStep = 2

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	sizeSlider     *widget.Slider
	sizeLabel      *widget.Label
	workersSelect  *widget.Select
	watchCheck     *widget.Check
	languageSelect *widget.Select

	onSaved func()
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
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
	sd.sizeLabel = widget.NewLabel("")
	sd.sizeSlider = widget.NewSlider(config.MinThumbnailSizeLower, config.MinThumbnailSizeUpper)
	sd.sizeSlider.Step = thumbnailSizeStep
	sd.sizeSlider.OnChanged = func(value float64) {
		sd.sizeLabel.SetText(strconv.Itoa(int(value)) + " px")
	}

	workers := make([]string, 0, config.MaxThumbnailWorkers)
	for i := 1; i <= config.MaxThumbnailWorkers; i++ {
		workers = append(workers, strconv.Itoa(i))
	}
	sd.workersSelect = widget.NewSelect(workers, nil)

	sd.watchCheck = widget.NewCheck(sd.localization.GetText(KeyWatchFolders), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabelWithStyle(sd.localization.GetText(KeyGallerySettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyMinThumbnailSize)+":"),
		container.NewBorder(nil, nil, nil, sd.sizeLabel, sd.sizeSlider),

		widget.NewLabel(sd.localization.GetText(KeyThumbnailWorkers)+":"),
		sd.workersSelect,

		sd.watchCheck,

		widget.NewLabelWithStyle(sd.localization.GetText(KeyInterfaceSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.sizeSlider.SetValue(float64(sd.settings.GetMinThumbnailSize()))
	sd.workersSelect.SetSelected(strconv.Itoa(sd.settings.GetThumbnailWorkers()))
	sd.watchCheck.SetChecked(sd.settings.GetWatchFolders())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetMinThumbnailSize(int(sd.sizeSlider.Value))

	if workers, err := strconv.Atoi(sd.workersSelect.Selected); err == nil {
		sd.settings.SetThumbnailWorkers(workers)
	}

	sd.settings.SetWatchFolders(sd.watchCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
