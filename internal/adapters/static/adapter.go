// Package static writes prerendered pages to a directory that any static
// file host can serve.
package static

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/3-lines-studio/prerender/internal/adapters/fs"
	"github.com/3-lines-studio/prerender/internal/config"
	"github.com/3-lines-studio/prerender/internal/core"
)

const (
	Name         = "static"
	ManifestFile = "prerender-manifest.json"
)

const fallbackShell = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  </head>
  <body>
    <div id="app"></div>
  </body>
</html>
`

type manifestExport struct {
	Version  int             `json:"version"`
	BuildID  string          `json:"buildId"`
	Target   string          `json:"target,omitempty"`
	Routes   []routeExport   `json:"routes"`
	Skipped  []skippedExport `json:"skipped,omitempty"`
	Fallback string          `json:"fallback,omitempty"`
}

type routeExport struct {
	Path   string `json:"path"`
	File   string `json:"file"`
	Status int    `json:"status"`
}

type skippedExport struct {
	Path     string `json:"path"`
	Referrer string `json:"referrer,omitempty"`
	Message  string `json:"message"`
}

type Adapter struct {
	fs       fs.FileSystem
	pages    string
	fallback string
	logger   *slog.Logger
}

func New(fsys fs.FileSystem, opts config.AdapterOptions, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	pages := opts.Pages
	if pages == "" {
		pages = config.DefaultPagesDir
	}
	return &Adapter{
		fs:       fsys,
		pages:    pages,
		fallback: opts.Fallback,
		logger:   logger,
	}
}

// Resolve builds the adapter named in opts.
func Resolve(fsys fs.FileSystem, opts config.AdapterOptions, logger *slog.Logger) (*Adapter, error) {
	if opts.Name != "" && opts.Name != Name {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownAdapter, opts.Name)
	}
	return New(fsys, opts, logger), nil
}

func (a *Adapter) Name() string {
	return Name
}

func (a *Adapter) PagesDir() string {
	return a.pages
}

func (a *Adapter) Adapt(ctx context.Context, input core.ExportInput) error {
	if err := a.fs.RemoveAll(a.pages); err != nil {
		return fmt.Errorf("failed to clean %s: %w", a.pages, err)
	}
	if err := a.fs.MkdirAll(a.pages, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", a.pages, err)
	}

	export := manifestExport{
		Version: 1,
		BuildID: input.BuildID,
		Target:  input.Target,
		Routes:  make([]routeExport, 0, len(input.Pages)),
	}

	for _, page := range input.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel := core.OutputFileForPath(page.Path)
		if err := a.write(rel, page.Body); err != nil {
			return fmt.Errorf("failed to write %s: %w", page.Path, err)
		}
		export.Routes = append(export.Routes, routeExport{
			Path:   core.NormalizePath(page.Path),
			File:   rel,
			Status: page.Status,
		})
	}

	if a.fallback != "" {
		if err := a.write(a.fallback, []byte(fallbackShell)); err != nil {
			return fmt.Errorf("failed to write fallback page: %w", err)
		}
		export.Fallback = a.fallback
	}

	for _, event := range input.Suppressed {
		export.Skipped = append(export.Skipped, skippedExport{
			Path:     event.Path,
			Referrer: event.Referrer,
			Message:  event.Message,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := a.write(ManifestFile, append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	a.logger.Debug("static export written", "pages", len(export.Routes), "dir", a.pages)
	return nil
}

func (a *Adapter) write(rel string, data []byte) error {
	path := filepath.Join(a.pages, filepath.FromSlash(rel))
	if err := a.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return a.fs.WriteFile(path, data, 0644)
}
