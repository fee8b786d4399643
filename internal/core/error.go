package core

import "errors"

var (
	ErrEmptyRouteList = errors.New("prerender entries cannot be empty")
	ErrInvalidRoute   = errors.New("invalid prerender route")
	ErrUnknownTarget  = errors.New("unknown build target")
	ErrUnknownAdapter = errors.New("unknown adapter")
)

// FatalPrerenderError aborts the build. Its text is the original failure
// message with nothing added.
type FatalPrerenderError struct {
	Event PrerenderErrorEvent
}

func (e *FatalPrerenderError) Error() string {
	return e.Event.Message
}

// SuppressedPrerenderError records a failure the handler chose to ignore.
type SuppressedPrerenderError struct {
	Event PrerenderErrorEvent
}

func (e *SuppressedPrerenderError) Error() string {
	return "suppressed: " + e.Event.Message
}
