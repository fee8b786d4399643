package config

import "github.com/3-lines-studio/prerender/internal/core"

// VariantA declares the application's pages, including the dynamic
// workspace, machine and port templates. Failures on those templates are
// expected and ignored.
func VariantA() *Config {
	cfg := &Config{
		Name: "app",
		Kit: Kit{
			Prerender: PrerenderOptions{
				Entries: core.NewRouteList(
					"/",
					"/roadmap",
					"/settings",
					"/workspace/create/name",
					"/workspace/create/icon",
					"/workspace/create/iprange",
					"/workspace/[network_id]",
					"/workspace/[network_id]/machine",
					"/workspace/[network_id]/machine/[machine_id]",
					"/workspace/[network_id]/machine/[machine_id]/port",
					"/workspace/[network_id]/machine/[machine_id]/port/[port_id]",
					"/workspace/[network_id]/newscan",
				),
				HandleHTTPError: core.ClassifyPrerenderError,
				Crawl:           true,
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// VariantB pre-renders concrete sample instances instead of templates and
// has no error hook, so every failure stops the build.
func VariantB() *Config {
	cfg := &Config{
		Name: "sample",
		Kit: Kit{
			Prerender: PrerenderOptions{
				Entries: core.NewRouteList(
					"/",
					"/roadmap",
					"/settings",
					"/workspace/1",
					"/workspace/1/machine/1",
					"/workspace/1/machine/1/port/1",
				),
				Crawl: true,
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}
