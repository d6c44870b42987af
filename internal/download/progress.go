package download

import "io"

// progressWriter wraps a writer to track download progress
type progressWriter struct {
	// Writer is the underlying writer to write data to
	Writer io.Writer

	// Total is the expected total bytes, 0 when unknown
	Total int64

	// Written is the current number of bytes written
	Written int64

	// OnUpdate is called after each Write with current progress
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate
func (pw *progressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}
