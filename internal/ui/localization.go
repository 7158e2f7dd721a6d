package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyDownload        = "download"
	KeySettings        = "settings"
	KeyHistory         = "history"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyVideoURL        = "video_url"
	KeyEnterURL        = "enter_url"
	KeyDestination     = "destination"
	KeyBrowse          = "browse"
	KeyFormat          = "format"
	KeyKindVideo       = "kind_video"
	KeyKindAudio       = "kind_audio"
	KeyQuality         = "quality"
	KeyQualityBest     = "quality_best"
	KeyAutoReveal      = "auto_reveal"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyClose           = "close"
	KeyReady           = "ready"
	KeyNoHistory       = "no_history"
	KeyErrorOpening    = "error_opening"
	KeyStatusStarting  = "status_starting"
	KeyStatusTitle     = "status_title"
	KeyStatusAudioDone = "status_audio_done"
	KeyStatusVideoDone = "status_video_done"
	KeyStatusFailed    = "status_failed"
	KeyStatusBusy      = "status_busy"
	KeyPleaseEnterURL  = "please_enter_url"
	KeyDownloadDone    = "download_done"
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
		"fr": "Français",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations. Keys ending in a format
// verb are passed through fmt.Sprintf by the caller.
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "ytgrab",
		KeyDownload:        "Download",
		KeySettings:        "Settings",
		KeyHistory:         "History",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyVideoURL:        "Video URL",
		KeyEnterURL:        "https://www.youtube.com/watch?v=...",
		KeyDestination:     "Destination folder",
		KeyBrowse:          "Browse",
		KeyFormat:          "Format",
		KeyKindVideo:       "Video",
		KeyKindAudio:       "Audio MP3",
		KeyQuality:         "Quality",
		KeyQualityBest:     "Best",
		KeyAutoReveal:      "Open folder when a download completes",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyClose:           "Close",
		KeyReady:           "Ready",
		KeyNoHistory:       "No downloads yet",
		KeyErrorOpening:    "Error opening folder",
		KeyStatusStarting:  "Downloading...",
		KeyStatusTitle:     "Downloading: %s",
		KeyStatusAudioDone: "Audio MP3 downloaded successfully!",
		KeyStatusVideoDone: "Video (%s) downloaded successfully!",
		KeyStatusFailed:    "Error: %s",
		KeyStatusBusy:      "A download is already in progress",
		KeyPleaseEnterURL:  "Please enter a video URL",
		KeyDownloadDone:    "Download completed",
	}

	l.texts["fr"] = map[string]string{
		KeyAppTitle:        "ytgrab",
		KeyDownload:        "Télécharger",
		KeySettings:        "Paramètres",
		KeyHistory:         "Historique",
		KeyFile:            "Fichier",
		KeyLanguage:        "Langue",
		KeyVideoURL:        "URL de la vidéo",
		KeyEnterURL:        "https://www.youtube.com/watch?v=...",
		KeyDestination:     "Dossier de destination",
		KeyBrowse:          "Parcourir",
		KeyFormat:          "Format",
		KeyKindVideo:       "Vidéo",
		KeyKindAudio:       "Audio MP3",
		KeyQuality:         "Qualité",
		KeyQualityBest:     "Meilleure",
		KeyAutoReveal:      "Ouvrir le dossier à la fin du téléchargement",
		KeySave:            "Enregistrer",
		KeyCancel:          "Annuler",
		KeyClose:           "Fermer",
		KeyReady:           "Prêt",
		KeyNoHistory:       "Aucun téléchargement",
		KeyErrorOpening:    "Erreur d'ouverture du dossier",
		KeyStatusStarting:  "Téléchargement en cours...",
		KeyStatusTitle:     "Téléchargement : %s",
		KeyStatusAudioDone: "Audio MP3 téléchargé avec succès !",
		KeyStatusVideoDone: "Vidéo (%s) téléchargée avec succès !",
		KeyStatusFailed:    "Erreur : %s",
		KeyStatusBusy:      "Un téléchargement est déjà en cours",
		KeyPleaseEnterURL:  "Veuillez entrer une URL",
		KeyDownloadDone:    "Téléchargement terminé",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "ytgrab",
		KeyDownload:        "Скачать",
		KeySettings:        "Настройки",
		KeyHistory:         "История",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyVideoURL:        "URL видео",
		KeyEnterURL:        "https://www.youtube.com/watch?v=...",
		KeyDestination:     "Папка загрузки",
		KeyBrowse:          "Обзор",
		KeyFormat:          "Формат",
		KeyKindVideo:       "Видео",
		KeyKindAudio:       "Аудио MP3",
		KeyQuality:         "Качество",
		KeyQualityBest:     "Лучшее",
		KeyAutoReveal:      "Открывать папку после загрузки",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyClose:           "Закрыть",
		KeyReady:           "Готово",
		KeyNoHistory:       "Загрузок пока нет",
		KeyErrorOpening:    "Ошибка открытия папки",
		KeyStatusStarting:  "Загрузка...",
		KeyStatusTitle:     "Загрузка: %s",
		KeyStatusAudioDone: "Аудио MP3 успешно загружено!",
		KeyStatusVideoDone: "Видео (%s) успешно загружено!",
		KeyStatusFailed:    "Ошибка: %s",
		KeyStatusBusy:      "Загрузка уже выполняется",
		KeyPleaseEnterURL:  "Пожалуйста, введите URL",
		KeyDownloadDone:    "Загрузка завершена",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "ytgrab",
		KeyDownload:        "Baixar",
		KeySettings:        "Configurações",
		KeyHistory:         "Histórico",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyVideoURL:        "URL do vídeo",
		KeyEnterURL:        "https://www.youtube.com/watch?v=...",
		KeyDestination:     "Pasta de destino",
		KeyBrowse:          "Navegar",
		KeyFormat:          "Formato",
		KeyKindVideo:       "Vídeo",
		KeyKindAudio:       "Áudio MP3",
		KeyQuality:         "Qualidade",
		KeyQualityBest:     "Melhor",
		KeyAutoReveal:      "Abrir a pasta ao concluir o download",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyClose:           "Fechar",
		KeyReady:           "Pronto",
		KeyNoHistory:       "Nenhum download ainda",
		KeyErrorOpening:    "Erro ao abrir pasta",
		KeyStatusStarting:  "Baixando...",
		KeyStatusTitle:     "Baixando: %s",
		KeyStatusAudioDone: "Áudio MP3 baixado com sucesso!",
		KeyStatusVideoDone: "Vídeo (%s) baixado com sucesso!",
		KeyStatusFailed:    "Erro: %s",
		KeyStatusBusy:      "Um download já está em andamento",
		KeyPleaseEnterURL:  "Por favor, digite uma URL",
		KeyDownloadDone:    "Download concluído",
	}
}
