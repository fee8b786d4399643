package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/prerender/internal/core"
)

type fileConfig struct {
	Name      string        `yaml:"name"`
	Adapter   fileAdapter   `yaml:"adapter"`
	Prerender filePrerender `yaml:"prerender"`
}

type fileAdapter struct {
	Name     string `yaml:"name"`
	Pages    string `yaml:"pages"`
	Fallback string `yaml:"fallback"`
}

type filePrerender struct {
	Entries         []string          `yaml:"entries"`
	Crawl           *bool             `yaml:"crawl"`
	Concurrency     int               `yaml:"concurrency"`
	HandleHTTPError *fileErrorHandler `yaml:"handle_http_error"`
}

// fileErrorHandler lists the markers whose failures are ignored. Without it
// every failure fails the build.
type fileErrorHandler struct {
	Ignore []string `yaml:"ignore"`
}

// FileReader is the read side of the adapters' file system.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
}

// LoadFile reads a YAML build configuration from fsys.
func LoadFile(fsys FileReader, path string) (*Config, error) {
	if !fsys.FileExists(path) {
		return nil, fmt.Errorf("config file %s not found", path)
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := &Config{
		Name: fc.Name,
		Kit: Kit{
			Adapter: AdapterOptions{
				Name:     fc.Adapter.Name,
				Pages:    fc.Adapter.Pages,
				Fallback: fc.Adapter.Fallback,
			},
			Prerender: PrerenderOptions{
				Entries:     core.NewRouteList(fc.Prerender.Entries...),
				Crawl:       true,
				Concurrency: fc.Prerender.Concurrency,
			},
		},
	}
	if fc.Prerender.Crawl != nil {
		cfg.Kit.Prerender.Crawl = *fc.Prerender.Crawl
	}
	if h := fc.Prerender.HandleHTTPError; h != nil {
		cfg.Kit.Prerender.HandleHTTPError = core.IgnoreMarkers(h.Ignore...)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
