package core

import (
	"fmt"
	"net/http"
)

type RenderedPage struct {
	Path        string
	Referrer    string
	Status      int
	ContentType string
	Body        []byte
	Links       []string
}

// HTTPStatusError is returned by renderers when a page answers with a
// non-2xx status.
type HTTPStatusError struct {
	Status int
	Path   string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Path)
}

func IsSuccessStatus(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// IsRedirect reports whether the page stands in for a redirect response.
func (p RenderedPage) IsRedirect() bool {
	return p.Status >= http.StatusMultipleChoices && p.Status < http.StatusBadRequest
}

type ExportInput struct {
	BuildID    string
	Target     string
	Pages      []RenderedPage
	Suppressed []PrerenderErrorEvent
}
