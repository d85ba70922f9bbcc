package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyTextCard           = "text_card"
	KeyWebcamCard         = "webcam_card"
	KeyScreenCard         = "screen_card"
	KeyUpload             = "upload"
	KeyRecord             = "record"
	KeyStop               = "stop"
	KeyPlay               = "play"
	KeyLoad               = "load"
	KeyExport             = "export"
	KeyDelete             = "delete"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyVaultDirectory     = "vault_directory"
	KeyExportDirectory    = "export_directory"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyFrameRate          = "frame_rate"
	KeyFrameSize          = "frame_size"
	KeyAutoPreview        = "auto_preview"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyVaultEntries       = "vault_entries"
	KeyVaultEmpty         = "vault_empty"
	KeyNoActiveEntry      = "no_active_entry"
	KeySettingsSaved      = "settings_saved"
	KeyImportingFile      = "importing_file"
	KeyImportCompleted    = "import_completed"
	KeyAcquiringDevice    = "acquiring_device"
	KeyRecordingStarted   = "recording_started"
	KeyRecordingStopping  = "recording_stopping"
	KeyRecordingSaved     = "recording_saved"
	KeyRecordingFailed    = "recording_failed"
	KeyRecordingActive    = "recording_active"
	KeyEntryDeleted       = "entry_deleted"
	KeyEntryNotFound      = "entry_not_found"
	KeyUnrecognizedEntry  = "unrecognized_entry"
	KeyExportCompleted    = "export_completed"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyErrorReadingFile   = "error_reading_file"
	KeyUnsupportedTitle   = "unsupported_title"
	KeyUnsupportedDetails = "unsupported_details"
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
		KeyAppTitle:           "Media Vault",
		KeyTextCard:           "Text Note",
		KeyWebcamCard:         "Webcam",
		KeyScreenCard:         "Screen",
		KeyUpload:             "Upload",
		KeyRecord:             "Record",
		KeyStop:               "Stop",
		KeyPlay:               "Play",
		KeyLoad:               "Load",
		KeyExport:             "Export",
		KeyDelete:             "Delete",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyVaultDirectory:     "Vault Directory",
		KeyExportDirectory:    "Export Directory",
		KeyFFmpegPath:         "FFmpeg Path",
		KeyFrameRate:          "Capture Frame Rate",
		KeyFrameSize:          "Webcam Frame Size",
		KeyAutoPreview:        "Open preview when loading",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyVaultEntries:       "Stored Entries",
		KeyVaultEmpty:         "The vault is empty",
		KeyNoActiveEntry:      "Nothing loaded",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyImportingFile:      "Importing file...",
		KeyImportCompleted:    "File stored in vault",
		KeyAcquiringDevice:    "Acquiring device...",
		KeyRecordingStarted:   "Recording",
		KeyRecordingStopping:  "Finishing recording...",
		KeyRecordingSaved:     "Recording saved",
		KeyRecordingFailed:    "Recording failed",
		KeyRecordingActive:    "A recording is already in progress",
		KeyEntryDeleted:       "Entry deleted",
		KeyEntryNotFound:      "Entry no longer exists",
		KeyUnrecognizedEntry:  "Unrecognized entry name",
		KeyExportCompleted:    "Exported to",
		KeyErrorOpeningFile:   "Error opening file",
		KeyErrorReadingFile:   "Error reading file",
		KeyUnsupportedTitle:   "Capture not available",
		KeyUnsupportedDetails: "FFmpeg was not found, so recording is disabled. Install FFmpeg or set its path in Settings, then restart the application.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Медиа Хранилище",
		KeyTextCard:           "Текстовая заметка",
		KeyWebcamCard:         "Веб-камера",
		KeyScreenCard:         "Экран",
		KeyUpload:             "Загрузить",
		KeyRecord:             "Запись",
		KeyStop:               "Стоп",
		KeyPlay:               "Воспроизвести",
		KeyLoad:               "Открыть",
		KeyExport:             "Экспорт",
		KeyDelete:             "Удалить",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyVaultDirectory:     "Папка хранилища",
		KeyExportDirectory:    "Папка экспорта",
		KeyFFmpegPath:         "Путь к FFmpeg",
		KeyFrameRate:          "Частота кадров записи",
		KeyFrameSize:          "Размер кадра веб-камеры",
		KeyAutoPreview:        "Открывать просмотр при загрузке",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyVaultEntries:       "Сохранённые записи",
		KeyVaultEmpty:         "Хранилище пусто",
		KeyNoActiveEntry:      "Ничего не загружено",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyImportingFile:      "Импорт файла...",
		KeyImportCompleted:    "Файл сохранён в хранилище",
		KeyAcquiringDevice:    "Подключение устройства...",
		KeyRecordingStarted:   "Идёт запись",
		KeyRecordingStopping:  "Завершение записи...",
		KeyRecordingSaved:     "Запись сохранена",
		KeyRecordingFailed:    "Ошибка записи",
		KeyRecordingActive:    "Запись уже выполняется",
		KeyEntryDeleted:       "Запись удалена",
		KeyEntryNotFound:      "Запись больше не существует",
		KeyUnrecognizedEntry:  "Нераспознанное имя записи",
		KeyExportCompleted:    "Экспортировано в",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyErrorReadingFile:   "Ошибка чтения файла",
		KeyUnsupportedTitle:   "Запись недоступна",
		KeyUnsupportedDetails: "FFmpeg не найден, запись отключена. Установите FFmpeg или укажите путь в настройках и перезапустите приложение.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Media Vault",
		KeyTextCard:           "Nota de Texto",
		KeyWebcamCard:         "Webcam",
		KeyScreenCard:         "Tela",
		KeyUpload:             "Enviar",
		KeyRecord:             "Gravar",
		KeyStop:               "Parar",
		KeyPlay:               "Reproduzir",
		KeyLoad:               "Abrir",
		KeyExport:             "Exportar",
		KeyDelete:             "Excluir",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyVaultDirectory:     "Diretório do Cofre",
		KeyExportDirectory:    "Diretório de Exportação",
		KeyFFmpegPath:         "Caminho do FFmpeg",
		KeyFrameRate:          "Taxa de Quadros de Captura",
		KeyFrameSize:          "Tamanho do Quadro da Webcam",
		KeyAutoPreview:        "Abrir visualização ao carregar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyVaultEntries:       "Entradas Armazenadas",
		KeyVaultEmpty:         "O cofre está vazio",
		KeyNoActiveEntry:      "Nada carregado",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyImportingFile:      "Importando arquivo...",
		KeyImportCompleted:    "Arquivo armazenado no cofre",
		KeyAcquiringDevice:    "Conectando dispositivo...",
		KeyRecordingStarted:   "Gravando",
		KeyRecordingStopping:  "Finalizando gravação...",
		KeyRecordingSaved:     "Gravação salva",
		KeyRecordingFailed:    "Falha na gravação",
		KeyRecordingActive:    "Uma gravação já está em andamento",
		KeyEntryDeleted:       "Entrada excluída",
		KeyEntryNotFound:      "A entrada não existe mais",
		KeyUnrecognizedEntry:  "Nome de entrada não reconhecido",
		KeyExportCompleted:    "Exportado para",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyErrorReadingFile:   "Erro ao ler arquivo",
		KeyUnsupportedTitle:   "Captura indisponível",
		KeyUnsupportedDetails: "O FFmpeg não foi encontrado, então a gravação está desativada. Instale o FFmpeg ou defina seu caminho nas Configurações e reinicie o aplicativo.",
	}
}
