package core

import (
	"fmt"
	"strings"
)

// PrerenderErrorEvent describes one failed attempt to render a path at build
// time. Referrer is empty for paths that came straight from the entry list.
type PrerenderErrorEvent struct {
	Path     string
	Referrer string
	Message  string
}

type DecisionAction int

const (
	DecisionSuppress DecisionAction = iota
	DecisionFail
)

func (a DecisionAction) String() string {
	switch a {
	case DecisionSuppress:
		return "suppress"
	case DecisionFail:
		return "fail"
	}
	return fmt.Sprintf("DecisionAction(%d)", int(a))
}

type Decision struct {
	Action  DecisionAction
	Message string
}

func Suppress() Decision {
	return Decision{Action: DecisionSuppress}
}

func Fail(message string) Decision {
	return Decision{Action: DecisionFail, Message: message}
}

func (d Decision) Suppressed() bool {
	return d.Action == DecisionSuppress
}

// Err returns nil for a suppress decision. A fail decision yields a
// *FatalPrerenderError whose text is the message, unmodified.
func (d Decision) Err(event PrerenderErrorEvent) error {
	if d.Action == DecisionSuppress {
		return nil
	}
	event.Message = d.Message
	return &FatalPrerenderError{Event: event}
}

// HTTPErrorHandler decides what a render failure means for the build.
type HTTPErrorHandler func(PrerenderErrorEvent) Decision

// DynamicRouteMarkers name the placeholders that have no concrete value at
// build time.
var DynamicRouteMarkers = []string{"[network_id]", "[machine_id]", "[port_id]"}

// ClassifyPrerenderError suppresses failures on paths containing any of the
// DynamicRouteMarkers and fails the build with the event message otherwise.
// It looks at nothing but the path.
func ClassifyPrerenderError(event PrerenderErrorEvent) Decision {
	if containsAny(event.Path, DynamicRouteMarkers) {
		return Suppress()
	}
	return Fail(event.Message)
}

// IgnoreMarkers builds a classifier over a custom marker allowlist.
func IgnoreMarkers(markers ...string) HTTPErrorHandler {
	list := make([]string, 0, len(markers))
	for _, m := range markers {
		if m != "" {
			list = append(list, m)
		}
	}
	return func(event PrerenderErrorEvent) Decision {
		if containsAny(event.Path, list) {
			return Suppress()
		}
		return Fail(event.Message)
	}
}

// FailOnError is used when a configuration does not define a handler.
func FailOnError(event PrerenderErrorEvent) Decision {
	return Fail(event.Message)
}

func containsAny(p string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(p, m) {
			return true
		}
	}
	return false
}

// FormatHTTPError builds the message reported for a non-2xx render.
func FormatHTTPError(status int, p, referrer string) string {
	msg := fmt.Sprintf("%d %s", status, p)
	if referrer != "" {
		msg += " (linked from " + referrer + ")"
	}
	return msg
}
