package share

import (
	"path"
	"strings"

	"github.com/ytget/rec-viewer/internal/model"
)

// RecordingExtension is stripped from the recording URL before companion
// file suffixes are appended
const RecordingExtension = ".rrd"

// DefaultRecordingFileName is suggested when the URL has no usable name
const DefaultRecordingFileName = "recording.rrd"

type companionTemplate struct {
	suffix      string
	name        string
	fileType    string
	description string
	label       string
	key         string
}

var companionTemplates = []companionTemplate{
	{"_annotations.mp4", "annotations.mp4", "mp4", "Annotation video file", "Download Annotations Video", "video"},
	{"_coordinates.csv", "coordinates.csv", "csv", "Annotation coordinates data", "Download Annotations Coordinates", "coordinates"},
	{"_actions.json", "actions.json", "json", "Annotation actions metadata", "Download Annotations Actions.json", "actions"},
}

// CompanionBase strips query, fragment and the recording extension
func CompanionBase(recordingURL string) string {
	base := recordingURL
	if idx := strings.IndexAny(base, "?#"); idx >= 0 {
		base = base[:idx]
	}
	return strings.TrimSuffix(base, RecordingExtension)
}

// CompanionFiles derives the annotation files published next to a recording
func CompanionFiles(recordingURL string) []model.DownloadableFile {
	base := CompanionBase(recordingURL)
	files := make([]model.DownloadableFile, 0, len(companionTemplates))
	for _, tmpl := range companionTemplates {
		files = append(files, model.DownloadableFile{
			Name:        tmpl.name,
			URL:         base + tmpl.suffix,
			FileType:    tmpl.fileType,
			Description: tmpl.description,
			Label:       tmpl.label,
			Key:         tmpl.key,
		})
	}
	return files
}

// recordingFileName suggests a file name for the recording download
func recordingFileName(recordingURL string) string {
	base := recordingURL
	if idx := strings.IndexAny(base, "?#"); idx >= 0 {
		base = base[:idx]
	}
	name := path.Base(base)
	if !strings.HasSuffix(name, RecordingExtension) || name == RecordingExtension {
		return DefaultRecordingFileName
	}
	return name
}
