package model

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DownloadTask represents a single file download started from the share dialog
type DownloadTask struct {
	ID         string
	URL        string
	FileName   string // suggested file name
	Status     TaskStatus
	Written    int64     // bytes written so far
	Total      int64     // expected size in bytes, 0 if unknown
	LastError  string    // last error message if any
	OutputPath string    // path of the saved file
	StartedAt  time.Time // when the task was added
	FinishedAt time.Time // when the task finished
}

// Percent returns progress as 0..100, or -1 if the size is unknown
func (dt *DownloadTask) Percent() int {
	if dt.Total <= 0 {
		if dt.Status == TaskStatusCompleted {
			return 100
		}
		return -1
	}
	percent := int(dt.Written * 100 / dt.Total)
	if percent > 100 {
		percent = 100
	}
	return percent
}

// GetSizeString returns a human readable "written / total" string
func (dt *DownloadTask) GetSizeString() string {
	if dt.Total <= 0 {
		return humanize.Bytes(uint64(dt.Written))
	}
	return humanize.Bytes(uint64(dt.Written)) + " / " + humanize.Bytes(uint64(dt.Total))
}

// GetDisplayTitle returns file name, output file name, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.FileName != "" {
		return dt.FileName
	}

	if dt.OutputPath != "" {
		return filepath.Base(dt.OutputPath)
	}

	if dt.URL == "" {
		return ""
	}
	if idx := strings.LastIndex(dt.URL, "/"); idx >= 0 && idx < len(dt.URL)-1 {
		return dt.URL[idx+1:]
	}
	return dt.URL
}
