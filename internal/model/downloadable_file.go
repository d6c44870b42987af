package model

// DownloadableFile is a file offered for download next to a recording.
// Values are immutable; a new list replaces the old one whenever the
// recording URL changes.
type DownloadableFile struct {
	Name        string
	URL         string
	FileType    string
	Description string

	// Label is the download button text
	Label string

	// Key names the file's download button, empty for files without a
	// fixed button
	Key string
}

// FeedbackKey identifies the file's download button. Files without a fixed
// key get one of their own from their name.
func (f DownloadableFile) FeedbackKey() string {
	if f.Key != "" {
		return f.Key
	}
	return "file:" + f.Name
}
