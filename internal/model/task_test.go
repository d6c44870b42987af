package model

import (
	"testing"
)

func TestDownloadTask_Percent(t *testing.T) {
	tests := []struct {
		written  int64
		total    int64
		status   TaskStatus
		expected int
	}{
		{0, 0, TaskStatusDownloading, -1},
		{0, 0, TaskStatusCompleted, 100},
		{50, 200, TaskStatusDownloading, 25},
		{200, 200, TaskStatusCompleted, 100},
		{300, 200, TaskStatusDownloading, 100},
	}

	for _, test := range tests {
		task := &DownloadTask{Written: test.written, Total: test.total, Status: test.status}
		result := task.Percent()
		if result != test.expected {
			t.Errorf("Percent() with written=%d total=%d = %d, expected %d", test.written, test.total, result, test.expected)
		}
	}
}

func TestDownloadTask_GetSizeString(t *testing.T) {
	task := &DownloadTask{Written: 1000, Total: 2000}
	if got := task.GetSizeString(); got != "1.0 kB / 2.0 kB" {
		t.Errorf("GetSizeString() = %q, expected %q", got, "1.0 kB / 2.0 kB")
	}

	task = &DownloadTask{Written: 1000}
	if got := task.GetSizeString(); got != "1.0 kB" {
		t.Errorf("GetSizeString() = %q, expected %q", got, "1.0 kB")
	}
}

func TestDownloadTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		fileName   string
		outputPath string
		url        string
		expected   string
	}{
		{"actions.json", "", "https://host/rec_actions.json", "actions.json"},
		{"", "/tmp/downloads/rec (1).rrd", "https://host/rec.rrd", "rec (1).rrd"},
		{"", "", "https://host/rec_coordinates.csv", "rec_coordinates.csv"},
		{"", "", "https://host/", "https://host/"},
		{"", "", "", ""},
	}

	for _, test := range tests {
		task := &DownloadTask{
			FileName:   test.fileName,
			OutputPath: test.outputPath,
			URL:        test.url,
		}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with fileName='%s', outputPath='%s', url='%s' = '%s', expected '%s'",
				test.fileName, test.outputPath, test.url, result, test.expected)
		}
	}
}
