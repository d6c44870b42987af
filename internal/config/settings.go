package config

import (
	"net/url"

	"fyne.io/fyne/v2"

	"github.com/ytget/rec-viewer/internal/model"
	"github.com/ytget/rec-viewer/internal/platform"
	"github.com/ytget/rec-viewer/internal/share"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyMaxParallel        = "max_parallel_downloads"
	KeyWebViewerURL       = "web_viewer_url"
	KeyPresentation       = "presentation"
	KeyTimestampFormat    = "timestamp_format"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultMaxParallel        = 2
	DefaultWebViewerURL       = "https://app.recviewer.dev/"
	DefaultPresentation       = share.PresentationAuto
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Limits
const (
	MinMaxParallel = 1
	MaxMaxParallel = 10
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMaxParallelDownloads returns the maximum number of parallel downloads
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Settings) SetMaxParallelDownloads(count int) {
	if count < MinMaxParallel {
		count = MinMaxParallel
	}
	if count > MaxMaxParallel {
		count = MaxMaxParallel
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetWebViewerURLString returns the configured web viewer address as stored
func (s *Settings) GetWebViewerURLString() string {
	return s.app.Preferences().StringWithFallback(KeyWebViewerURL, DefaultWebViewerURL)
}

// GetWebViewerURL returns the web viewer base for "full link" URLs, or nil
// when the stored value is not an absolute URL
func (s *Settings) GetWebViewerURL() *url.URL {
	return ParseWebViewerURL(s.GetWebViewerURLString())
}

// SetWebViewerURL sets the web viewer address. An empty value disables
// full links.
func (s *Settings) SetWebViewerURL(raw string) {
	s.app.Preferences().SetString(KeyWebViewerURL, raw)
}

// GetPresentation returns the stored presentation override
func (s *Settings) GetPresentation() string {
	return s.app.Preferences().StringWithFallback(KeyPresentation, DefaultPresentation)
}

// SetPresentation stores the presentation override. It applies on the next
// start.
func (s *Settings) SetPresentation(value string) {
	if _, err := share.ParsePresentation(value); err != nil {
		value = DefaultPresentation
	}
	s.app.Preferences().SetString(KeyPresentation, value)
}

// GetPresentationOptions returns available presentation options
func (s *Settings) GetPresentationOptions() []string {
	return []string{share.PresentationAuto, share.PresentationNameNative, share.PresentationNameWeb}
}

// GetTimestampFormat returns how timestamps are shown
func (s *Settings) GetTimestampFormat() model.TimestampFormat {
	format, err := model.ParseTimestampFormat(s.app.Preferences().String(KeyTimestampFormat))
	if err != nil {
		return model.TimestampFormatUTC
	}
	return format
}

// SetTimestampFormat sets how timestamps are shown
func (s *Settings) SetTimestampFormat(format model.TimestampFormat) {
	s.app.Preferences().SetString(KeyTimestampFormat, format.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to auto-reveal completed downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ParseWebViewerURL returns raw as an absolute http(s) URL, or nil
func ParseWebViewerURL(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}
	return u
}
