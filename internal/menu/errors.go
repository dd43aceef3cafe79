package menu

import (
	"errors"
	"fmt"
)

// Sentinel errors for the outcomes every mode shares.
var (
	// ErrNoSelection means the user cancelled; callers treat it as a
	// normal exit.
	ErrNoSelection = errors.New("no selection")
	// ErrMissingAction means the confirmed item has no runnable payload.
	ErrMissingAction = errors.New("item has no action")
	// ErrMissingFile means a config, cache, or style path did not resolve.
	ErrMissingFile = errors.New("file not found")
	// ErrStdinRead means dmenu mode could not read its input.
	ErrStdinRead = errors.New("failed to read stdin")
)

// RunFailedError reports a spawn or exec failure for an item's action.
type RunFailedError struct {
	Detail string
}

func (e *RunFailedError) Error() string {
	return fmt.Sprintf("run failed: %s", e.Detail)
}

// ParseError reports unparseable config or cache content.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing error: %s", e.Detail)
}

// ClipboardError reports a clipboard write failure.
type ClipboardError struct {
	Detail string
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard: %s", e.Detail)
}

// GraphicsError reports a windowing-toolkit initialisation failure.
type GraphicsError struct {
	Detail string
}

func (e *GraphicsError) Error() string {
	return fmt.Sprintf("graphics: %s", e.Detail)
}
