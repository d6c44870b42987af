package share

import (
	"errors"

	"github.com/ytget/rec-viewer/internal/model"
)

// ErrExamplesSource is the derivation failure for the built-in examples
// server, whose recordings are never shared
var ErrExamplesSource = errors.New("examples cannot be shared")

// Context is the slice of application state the share dialog reads. The
// host builds a fresh one for every call.
type Context struct {
	Store       *model.StoreHub
	DisplayMode model.DisplayMode

	// TimeControl is the active recording's time panel, nil when no
	// recording is shown
	TimeControl *model.TimeControl

	Selection       model.Selection
	TimestampFormat model.TimestampFormat
}

// URLDerivationError reports that no shareable URL exists for a context
type URLDerivationError struct {
	Mode model.DisplayMode
	Err  error
}

func (e *URLDerivationError) Error() string {
	return e.Err.Error()
}

func (e *URLDerivationError) Unwrap() error {
	return e.Err
}

// CurrentURL derives the URL for the current screen, the starting point
// of the dialog
func CurrentURL(ctx Context) (*model.OpenURL, error) {
	if ctx.DisplayMode.IsExamples() {
		return nil, &URLDerivationError{Mode: ctx.DisplayMode, Err: ErrExamplesSource}
	}
	u, err := model.OpenURLFromContext(ctx.Store, ctx.DisplayMode, ctx.TimeControl, ctx.Selection)
	if err != nil {
		return nil, &URLDerivationError{Mode: ctx.DisplayMode, Err: err}
	}
	return u, nil
}
