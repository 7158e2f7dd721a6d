package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/ytgrab/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestMediaKind(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if kind := settings.GetMediaKind(); kind != DefaultMediaKind {
		t.Errorf("Expected default media kind %s, got %s", DefaultMediaKind, kind)
	}

	settings.SetMediaKind(model.MediaKindAudio)
	if kind := settings.GetMediaKind(); kind != model.MediaKindAudio {
		t.Errorf("Expected media kind %s, got %s", model.MediaKindAudio, kind)
	}

	// Garbage in preferences falls back to the default
	app.Preferences().SetString(KeyMediaKind, "hologram")
	if kind := settings.GetMediaKind(); kind != DefaultMediaKind {
		t.Errorf("Expected fallback media kind %s, got %s", DefaultMediaKind, kind)
	}
}

func TestQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if q := settings.GetQuality(); q != DefaultQuality {
		t.Errorf("Expected default quality %s, got %s", DefaultQuality, q)
	}

	settings.SetQuality(model.Quality720)
	if q := settings.GetQuality(); q != model.Quality720 {
		t.Errorf("Expected quality %s, got %s", model.Quality720, q)
	}

	app.Preferences().SetString(KeyQuality, "8k")
	if q := settings.GetQuality(); q != DefaultQuality {
		t.Errorf("Expected fallback quality %s, got %s", DefaultQuality, q)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("fr")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "fr" {
		t.Errorf("Expected language 'fr', got %s", retrievedLang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Expected default auto-reveal setting")
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "fr", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
