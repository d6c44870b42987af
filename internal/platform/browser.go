package platform

import (
	"net/url"

	"fyne.io/fyne/v2"

	"github.com/ytget/rec-viewer/internal/logging"
)

// URLOpener opens a URL in the hosting browser or OS. fyne.App satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// BrowserDownloader hands downloads to the browser. The browser decides
// where the file is saved, so the suggested name is only logged.
type BrowserDownloader struct {
	opener URLOpener
}

// NewBrowserDownloader creates a downloader that opens files through app
func NewBrowserDownloader(app fyne.App) *BrowserDownloader {
	return &BrowserDownloader{opener: app}
}

// Download opens fileURL and returns immediately
func (b *BrowserDownloader) Download(fileURL, fileName string) {
	u, err := url.Parse(fileURL)
	if err != nil {
		logging.Default.Warn("invalid download url", "url", fileURL, "err", err)
		return
	}
	if err := b.opener.OpenURL(u); err != nil {
		logging.Default.Error("browser download failed", "file", fileName, "err", err)
		return
	}
	logging.Default.Info("browser download started", "file", fileName, "url", fileURL)
}
