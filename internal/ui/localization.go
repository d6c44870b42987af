package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyStop              = "stop"
	KeyReveal            = "reveal"
	KeyRemove            = "remove"
	KeyClose             = "close"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyMaxParallel       = "max_parallel"
	KeyWebViewerURL      = "web_viewer_url"
	KeyPresentation      = "presentation"
	KeyTimestampFormat   = "timestamp_format"
	KeyAutoReveal        = "auto_reveal"
	KeyRestartRequired   = "restart_required"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyDisplayMode       = "display_mode"
	KeyRecording         = "recording"
	KeyNoRecording       = "no_recording"
	KeyTimeline          = "timeline"
	KeyTimeCursor        = "time_cursor"
	KeyLoopSelection     = "loop_selection"
	KeyClear             = "clear"
	KeySelection         = "selection"
	KeySelectionHint     = "selection_hint"
	KeyDownloads         = "downloads"
	KeyNoDownloads       = "no_downloads"
	KeyDownloadCompleted = "download_completed"
	KeyErrorStoppingTask = "error_stopping_task"
	KeyErrorOpeningFile  = "error_opening_file"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Recording Viewer",
		KeyStop:              "Stop",
		KeyReveal:            "Show in folder",
		KeyRemove:            "Remove",
		KeyClose:             "Close",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyMaxParallel:       "Max Parallel Downloads",
		KeyWebViewerURL:      "Web Viewer URL",
		KeyPresentation:      "Share Dialog Mode",
		KeyTimestampFormat:   "Timestamp Format",
		KeyAutoReveal:        "Show downloaded files in folder",
		KeyRestartRequired:   "Dialog mode changes apply after restart.",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDisplayMode:       "View",
		KeyRecording:         "Recording",
		KeyNoRecording:       "No recording loaded",
		KeyTimeline:          "Timeline",
		KeyTimeCursor:        "Time",
		KeyLoopSelection:     "Loop",
		KeyClear:             "Clear",
		KeySelection:         "Selection",
		KeySelectionHint:     "Entity path, e.g. /world/points",
		KeyDownloads:         "Downloads",
		KeyNoDownloads:       "No downloads yet",
		KeyDownloadCompleted: "Download completed",
		KeyErrorStoppingTask: "Error stopping task",
		KeyErrorOpeningFile:  "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Просмотр записей",
		KeyStop:              "Стоп",
		KeyReveal:            "Показать в папке",
		KeyRemove:            "Удалить",
		KeyClose:             "Закрыть",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyMaxParallel:       "Макс. параллельных",
		KeyWebViewerURL:      "Адрес веб-просмотрщика",
		KeyPresentation:      "Режим диалога",
		KeyTimestampFormat:   "Формат времени",
		KeyAutoReveal:        "Показывать загруженные файлы",
		KeyRestartRequired:   "Режим диалога применится после перезапуска.",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDisplayMode:       "Вид",
		KeyRecording:         "Запись",
		KeyNoRecording:       "Запись не загружена",
		KeyTimeline:          "Шкала",
		KeyTimeCursor:        "Время",
		KeyLoopSelection:     "Цикл",
		KeyClear:             "Сбросить",
		KeySelection:         "Выделение",
		KeySelectionHint:     "Путь сущности, например /world/points",
		KeyDownloads:         "Загрузки",
		KeyNoDownloads:       "Загрузок пока нет",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyErrorStoppingTask: "Ошибка остановки задачи",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Visualizador de Gravações",
		KeyStop:              "Parar",
		KeyReveal:            "Mostrar na pasta",
		KeyRemove:            "Remover",
		KeyClose:             "Fechar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyMaxParallel:       "Max Downloads Paralelos",
		KeyWebViewerURL:      "URL do Visualizador Web",
		KeyPresentation:      "Modo do Diálogo",
		KeyTimestampFormat:   "Formato de Hora",
		KeyAutoReveal:        "Mostrar arquivos baixados na pasta",
		KeyRestartRequired:   "O modo do diálogo é aplicado após reiniciar.",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDisplayMode:       "Visão",
		KeyRecording:         "Gravação",
		KeyNoRecording:       "Nenhuma gravação carregada",
		KeyTimeline:          "Linha do tempo",
		KeyTimeCursor:        "Tempo",
		KeyLoopSelection:     "Loop",
		KeyClear:             "Limpar",
		KeySelection:         "Seleção",
		KeySelectionHint:     "Caminho da entidade, ex. /world/points",
		KeyDownloads:         "Downloads",
		KeyNoDownloads:       "Nenhum download ainda",
		KeyDownloadCompleted: "Download concluído",
		KeyErrorStoppingTask: "Erro ao parar tarefa",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
	}
}
