package download

import (
	"github.com/ytget/rec-viewer/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))

	// Download starts a transfer without waiting for it
	Download(fileURL, fileName string)

	AddTask(url, fileName string) (*model.DownloadTask, error)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	StopTask(id string) error
	RemoveTask(id string) error

	// SetMaxParallelDownloads sets the maximum number of parallel downloads
	SetMaxParallelDownloads(max int)

	// SetDownloadDirectory sets the download directory
	SetDownloadDirectory(dir string)
}

var _ Downloader = (*Service)(nil)
