package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyFolders           = "folders"
	KeyAddFolder         = "add_folder"
	KeyAddPictures       = "add_pictures"
	KeyRemoveFolder      = "remove_folder"
	KeyRescan            = "rescan"
	KeyFilterPlaceholder = "filter_placeholder"
	KeyFolderMissing     = "folder_missing"
	KeyFolderError       = "folder_error"
	KeyFolderAdded       = "folder_added"
	KeyFolderExists      = "folder_exists"
	KeyNoFolders         = "no_folders"
	KeyNoMatches         = "no_matches"
	KeyScanning          = "scanning"
	KeyImagesFound       = "images_found"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyPrevious          = "previous"
	KeyNext              = "next"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorLoadingImage = "error_loading_image"
	KeyGallerySettings   = "gallery_settings"
	KeyInterfaceSettings = "interface_settings"
	KeyMinThumbnailSize  = "min_thumbnail_size"
	KeyThumbnailWorkers  = "thumbnail_workers"
	KeyWatchFolders      = "watch_folders"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key, falling back to English
// and then to the key itself
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if text, found := l.texts["en"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pl": "Polski",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Gallery",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyFolders:           "Folders",
		KeyAddFolder:         "Add folder",
		KeyAddPictures:       "Add Pictures folder",
		KeyRemoveFolder:      "Remove folder",
		KeyRescan:            "Rescan",
		KeyFilterPlaceholder: "Filter by file or folder name",
		KeyFolderMissing:     "Folder does not exist",
		KeyFolderError:       "Cannot read folder",
		KeyFolderAdded:       "Folder added",
		KeyFolderExists:      "Folder is already in the list",
		KeyNoFolders:         "Add a folder to see its photos",
		KeyNoMatches:         "No photos match the filter",
		KeyScanning:          "Scanning folders...",
		KeyImagesFound:       "%d photos",
		KeyOpen:              "Open",
		KeyReveal:            "Show in folder",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorLoadingImage: "Cannot load image",
		KeyGallerySettings:   "Gallery",
		KeyInterfaceSettings: "Interface",
		KeyMinThumbnailSize:  "Minimum thumbnail size",
		KeyThumbnailWorkers:  "Parallel thumbnail decoders",
		KeyWatchFolders:      "Watch folders for changes",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved",
	}

	l.texts["pl"] = map[string]string{
		KeyAppTitle:          "Galeria",
		KeyFile:              "Plik",
		KeySettings:          "Ustawienia",
		KeyLanguage:          "Język",
		KeyFolders:           "Foldery",
		KeyAddFolder:         "Dodaj folder",
		KeyAddPictures:       "Dodaj folder Obrazy",
		KeyRemoveFolder:      "Usuń folder",
		KeyRescan:            "Skanuj ponownie",
		KeyFilterPlaceholder: "Filtruj po nazwie pliku lub folderu",
		KeyFolderMissing:     "Folder nie istnieje",
		KeyFolderError:       "Nie można odczytać folderu",
		KeyFolderAdded:       "Dodano folder",
		KeyFolderExists:      "Folder jest już na liście",
		KeyNoFolders:         "Dodaj folder, aby zobaczyć zdjęcia",
		KeyNoMatches:         "Brak zdjęć pasujących do filtra",
		KeyScanning:          "Skanowanie folderów...",
		KeyImagesFound:       "Zdjęcia: %d",
		KeyOpen:              "Otwórz",
		KeyReveal:            "Pokaż w folderze",
		KeyPrevious:          "Poprzednie",
		KeyNext:              "Następne",
		KeyErrorOpeningFile:  "Błąd otwierania pliku",
		KeyErrorLoadingImage: "Nie można wczytać obrazu",
		KeyGallerySettings:   "Galeria",
		KeyInterfaceSettings: "Interfejs",
		KeyMinThumbnailSize:  "Minimalny rozmiar miniatury",
		KeyThumbnailWorkers:  "Równoległe dekodery miniatur",
		KeyWatchFolders:      "Obserwuj zmiany w folderach",
		KeySave:              "Zapisz",
		KeyCancel:            "Anuluj",
		KeySettingsSaved:     "Zapisano ustawienia",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Галерея",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyFolders:           "Папки",
		KeyAddFolder:         "Добавить папку",
		KeyAddPictures:       "Добавить папку «Изображения»",
		KeyRemoveFolder:      "Удалить папку",
		KeyRescan:            "Пересканировать",
		KeyFilterPlaceholder: "Фильтр по имени файла или папки",
		KeyFolderMissing:     "Папка не существует",
		KeyFolderError:       "Не удалось прочитать папку",
		KeyFolderAdded:       "Папка добавлена",
		KeyFolderExists:      "Папка уже в списке",
		KeyNoFolders:         "Добавьте папку, чтобы увидеть фотографии",
		KeyNoMatches:         "Нет фотографий, подходящих под фильтр",
		KeyScanning:          "Сканирование папок...",
		KeyImagesFound:       "Фотографий: %d",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать в папке",
		KeyPrevious:          "Назад",
		KeyNext:              "Вперёд",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorLoadingImage: "Не удалось загрузить изображение",
		KeyGallerySettings:   "Галерея",
		KeyInterfaceSettings: "Интерфейс",
		KeyMinThumbnailSize:  "Минимальный размер миниатюры",
		KeyThumbnailWorkers:  "Параллельных декодеров миниатюр",
		KeyWatchFolders:      "Следить за изменениями в папках",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки сохранены",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Galeria",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyFolders:           "Pastas",
		KeyAddFolder:         "Adicionar pasta",
		KeyAddPictures:       "Adicionar pasta Imagens",
		KeyRemoveFolder:      "Remover pasta",
		KeyRescan:            "Reescanear",
		KeyFilterPlaceholder: "Filtrar por nome de arquivo ou pasta",
		KeyFolderMissing:     "A pasta não existe",
		KeyFolderError:       "Não foi possível ler a pasta",
		KeyFolderAdded:       "Pasta adicionada",
		KeyFolderExists:      "A pasta já está na lista",
		KeyNoFolders:         "Adicione uma pasta para ver as fotos",
		KeyNoMatches:         "Nenhuma foto corresponde ao filtro",
		KeyScanning:          "Escaneando pastas...",
		KeyImagesFound:       "%d fotos",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar na pasta",
		KeyPrevious:          "Anterior",
		KeyNext:              "Próxima",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorLoadingImage: "Não foi possível carregar a imagem",
		KeyGallerySettings:   "Galeria",
		KeyInterfaceSettings: "Interface",
		KeyMinThumbnailSize:  "Tamanho mínimo da miniatura",
		KeyThumbnailWorkers:  "Decodificadores de miniaturas em paralelo",
		KeyWatchFolders:      "Observar alterações nas pastas",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas",
	}
}
