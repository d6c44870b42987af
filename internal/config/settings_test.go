package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/rec-viewer/internal/model"
	"github.com/ytget/rec-viewer/internal/share"
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

func TestMaxParallelDownloads(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	maxParallel := settings.GetMaxParallelDownloads()
	if maxParallel != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, maxParallel)
	}

	// Test setting custom value
	settings.SetMaxParallelDownloads(5)

	retrievedMax := settings.GetMaxParallelDownloads()
	if retrievedMax != 5 {
		t.Errorf("Expected max parallel 5, got %d", retrievedMax)
	}

	// Test boundary values
	settings.SetMaxParallelDownloads(0) // Should be clamped to 1
	if settings.GetMaxParallelDownloads() != 1 {
		t.Error("Max parallel should be clamped to minimum 1")
	}

	settings.SetMaxParallelDownloads(15) // Should be clamped to 10
	if settings.GetMaxParallelDownloads() != 10 {
		t.Error("Max parallel should be clamped to maximum 10")
	}
}

func TestWebViewerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	u := settings.GetWebViewerURL()
	if u == nil || u.String() != DefaultWebViewerURL {
		t.Errorf("Expected default web viewer %s, got %v", DefaultWebViewerURL, u)
	}

	settings.SetWebViewerURL("http://localhost:9090/viewer/")
	if u := settings.GetWebViewerURL(); u == nil || u.Host != "localhost:9090" {
		t.Errorf("Expected custom web viewer, got %v", u)
	}

	// Empty disables full links
	settings.SetWebViewerURL("")
	if u := settings.GetWebViewerURL(); u != nil {
		t.Errorf("Expected nil web viewer, got %v", u)
	}
}

func TestParseWebViewerURL(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"https://app.recviewer.dev/", true},
		{"http://127.0.0.1:9090", true},
		{"app.recviewer.dev", false},
		{"ftp://host/", false},
		{"", false},
		{"://broken", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseWebViewerURL(tt.input)
			if (got != nil) != tt.valid {
				t.Errorf("ParseWebViewerURL(%q) = %v, expected valid=%v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestPresentation(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetPresentation() != share.PresentationAuto {
		t.Errorf("Expected default presentation auto, got %s", settings.GetPresentation())
	}

	settings.SetPresentation("web")
	if settings.GetPresentation() != "web" {
		t.Errorf("Expected presentation web, got %s", settings.GetPresentation())
	}

	// Unknown values fall back to auto
	settings.SetPresentation("kiosk")
	if settings.GetPresentation() != share.PresentationAuto {
		t.Errorf("Expected fallback to auto, got %s", settings.GetPresentation())
	}

	if len(settings.GetPresentationOptions()) != 3 {
		t.Errorf("Expected 3 presentation options, got %d", len(settings.GetPresentationOptions()))
	}
}

func TestTimestampFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetTimestampFormat() != model.TimestampFormatUTC {
		t.Error("Expected UTC by default")
	}

	settings.SetTimestampFormat(model.TimestampFormatUnixEpoch)
	if settings.GetTimestampFormat() != model.TimestampFormatUnixEpoch {
		t.Error("Expected unix epoch after setting it")
	}

	app.Preferences().SetString(KeyTimestampFormat, "bogus")
	if settings.GetTimestampFormat() != model.TimestampFormatUTC {
		t.Error("Unknown stored value should read as UTC")
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Expected default auto reveal")
	}
	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be enabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
