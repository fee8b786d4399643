package core

import "testing"

func TestValidateRoutePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"/", false},
		{"/roadmap", false},
		{"/workspace/[network_id]/machine/[machine_id]", false},
		{"", true},
		{"roadmap", true},
		{"/a?b=1", true},
		{"/a#top", true},
		{"/a/../b", true},
		{"/a/*", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidateRoutePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRoutePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestOutputFileForPath(t *testing.T) {
	tests := map[string]string{
		"/":                       "index.html",
		"":                        "index.html",
		"/roadmap":                "roadmap/index.html",
		"/roadmap/":               "roadmap/index.html",
		"/workspace/1/machine/1":  "workspace/1/machine/1/index.html",
		"/workspace/[network_id]": "workspace/[network_id]/index.html",
		"/404.html":               "404.html",
		"/data.json":              "data.json",
	}
	for in, want := range tests {
		if got := OutputFileForPath(in); got != want {
			t.Errorf("OutputFileForPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		base   string
		href   string
		want   string
		wantOK bool
	}{
		{"/", "/roadmap", "/roadmap", true},
		{"/", "roadmap", "/roadmap", true},
		{"/workspace/1", "machine", "/workspace/machine", true},
		{"/workspace/1/", "machine", "/workspace/1/machine", true},
		{"/workspace/1", "/workspace/1/machine/1?tab=ports#top", "/workspace/1/machine/1", true},
		{"/settings", "?tab=x", "/settings", true},
		{"/", "https://example.com/", "", false},
		{"/", "//cdn.example.com/a.js", "", false},
		{"/", "#main", "", false},
		{"/", "mailto:ops@example.com", "", false},
		{"/a/b", "../../../c", "/c", true},
		{"/", "sms:+15550100", "", false},
		{"/", "data:text/html,hi", "", false},
		{"/", "MAILTO:ops@example.com", "", false},
		{"/", "Tel:+15550100", "", false},
		{"/", "javascript:void(0)", "", false},
		{"/", "%zz", "", false},
		{"/", "/workspace/[network_id]", "/workspace/[network_id]", true},
	}

	for _, tt := range tests {
		got, ok := ResolveLink(tt.base, tt.href)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ResolveLink(%q, %q) = %q, %v; want %q, %v", tt.base, tt.href, got, ok, tt.want, tt.wantOK)
		}
	}
}
