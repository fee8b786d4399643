package render

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/3-lines-studio/prerender/internal/core"
)

// maxPageSize caps how much of a response body is kept for a page.
var maxPageSize int64 = 32 << 20

// HandlerRenderer renders pages by serving them from an in-process handler.
type HandlerRenderer struct {
	handler http.Handler
}

func NewHandlerRenderer(handler http.Handler) *HandlerRenderer {
	return &HandlerRenderer{handler: handler}
}

func (r *HandlerRenderer) Render(ctx context.Context, path string) (core.RenderedPage, error) {
	u := &url.URL{Scheme: "http", Host: "prerender.local", Path: path}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return core.RenderedPage{}, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "text/html")

	rec := httptest.NewRecorder()
	r.handler.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	body, err := readPage(path, res.Body)
	if err != nil {
		return core.RenderedPage{}, err
	}
	return pageFromResponse(path, res.StatusCode, res.Header, body)
}

// OriginRenderer renders pages by requesting them from a running server.
type OriginRenderer struct {
	client *http.Client
	origin *url.URL
}

func NewOriginRenderer(origin string, timeout time.Duration) (*OriginRenderer, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid origin %q: scheme must be http or https", origin)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	return &OriginRenderer{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		origin: u,
	}, nil
}

func (r *OriginRenderer) Render(ctx context.Context, path string) (core.RenderedPage, error) {
	u := *r.origin
	u.Path = r.origin.Path + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return core.RenderedPage{}, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "text/html")

	res, err := r.client.Do(req)
	if err != nil {
		return core.RenderedPage{}, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := readPage(path, res.Body)
	if err != nil {
		return core.RenderedPage{}, err
	}
	return pageFromResponse(path, res.StatusCode, res.Header, body)
}

func readPage(path string, r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxPageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %s: %w", path, err)
	}
	if int64(len(body)) > maxPageSize {
		return nil, fmt.Errorf("response for %s exceeds %d bytes", path, maxPageSize)
	}
	return body, nil
}

func pageFromResponse(path string, status int, header http.Header, body []byte) (core.RenderedPage, error) {
	if isRedirect(status) {
		location := header.Get("Location")
		if location == "" {
			return core.RenderedPage{}, &core.HTTPStatusError{Status: status, Path: path}
		}
		page := core.RenderedPage{
			Path:        path,
			Status:      status,
			ContentType: "text/html; charset=utf-8",
			Body:        redirectPage(location),
		}
		if target, ok := core.ResolveLink(path, location); ok {
			page.Links = []string{target}
		}
		return page, nil
	}

	if !core.IsSuccessStatus(status) {
		return core.RenderedPage{}, &core.HTTPStatusError{Status: status, Path: path}
	}

	contentType := header.Get("Content-Type")
	page := core.RenderedPage{
		Path:        path,
		Status:      status,
		ContentType: contentType,
		Body:        body,
	}
	if contentType == "" || strings.HasPrefix(contentType, "text/html") {
		links, err := ExtractLinks(path, body)
		if err != nil {
			return core.RenderedPage{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		page.Links = links
	}
	return page, nil
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

func redirectPage(location string) []byte {
	escaped := html.EscapeString(location)
	return []byte(`<!doctype html><meta http-equiv="refresh" content="0;url=` + escaped + `">`)
}
