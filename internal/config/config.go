// Package config holds the build configuration read once at the start of a
// prerender run and passed explicitly to everything that needs it.
package config

import (
	"fmt"
	"sort"

	"github.com/3-lines-studio/prerender/internal/core"
)

const (
	DefaultAdapter     = "static"
	DefaultPagesDir    = "build"
	DefaultConcurrency = 4
)

type Config struct {
	Name string
	Kit  Kit
}

type Kit struct {
	Adapter   AdapterOptions
	Prerender PrerenderOptions
}

// AdapterOptions select and configure the export target. The pipeline treats
// the target as opaque.
type AdapterOptions struct {
	Name     string
	Pages    string
	Fallback string
}

type PrerenderOptions struct {
	Entries         core.RouteList
	HandleHTTPError core.HTTPErrorHandler
	Crawl           bool
	Concurrency     int
}

// ErrorHandler returns the configured hook, or core.FailOnError when none is set.
func (p PrerenderOptions) ErrorHandler() core.HTTPErrorHandler {
	if p.HandleHTTPError == nil {
		return core.FailOnError
	}
	return p.HandleHTTPError
}

func (c *Config) applyDefaults() {
	if c.Kit.Adapter.Name == "" {
		c.Kit.Adapter.Name = DefaultAdapter
	}
	if c.Kit.Adapter.Pages == "" {
		c.Kit.Adapter.Pages = DefaultPagesDir
	}
	if c.Kit.Prerender.Concurrency <= 0 {
		c.Kit.Prerender.Concurrency = DefaultConcurrency
	}
}

func (c *Config) Validate() error {
	if c.Kit.Prerender.Entries.Len() == 0 {
		return core.ErrEmptyRouteList
	}
	for _, entry := range c.Kit.Prerender.Entries.Entries() {
		if err := core.ValidateRoutePath(string(entry)); err != nil {
			return fmt.Errorf("%w %q: %v", core.ErrInvalidRoute, entry, err)
		}
	}
	return nil
}

var targets = map[string]func() *Config{
	"app":    VariantA,
	"sample": VariantB,
}

// Target returns a fresh copy of a built-in build target.
func Target(name string) (*Config, error) {
	build, ok := targets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", core.ErrUnknownTarget, name, TargetNames())
	}
	return build(), nil
}

func TargetNames() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
