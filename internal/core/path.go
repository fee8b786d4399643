package core

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// ValidateRoutePath accepts literal paths and bracketed placeholder segments.
func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// OutputFileForPath maps a route path to the file an exporter writes for it,
// relative to the pages directory. Paths with an extension are written as is.
func OutputFileForPath(p string) string {
	p = NormalizePath(p)
	if p == "/" {
		return "index.html"
	}
	if path.Ext(p) != "" {
		return strings.TrimPrefix(p, "/")
	}
	return strings.TrimPrefix(p, "/") + "/index.html"
}

// ResolveLink resolves an href found on the page at base into a same-origin
// route path. External, fragment-only and non-http links report false.
func ResolveLink(base, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return "", false
	}

	href = u.Path
	if href == "" {
		return NormalizePath(base), true
	}

	var resolved string
	if strings.HasPrefix(href, "/") {
		resolved = path.Clean(href)
	} else {
		dir := base
		if !strings.HasPrefix(dir, "/") {
			dir = "/" + dir
		}
		if !strings.HasSuffix(dir, "/") {
			dir = path.Dir(dir)
		}
		resolved = path.Join(dir, href)
	}

	return NormalizePath(resolved), true
}
