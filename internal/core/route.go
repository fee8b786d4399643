package core

import "strings"

// RoutePattern is a page path to pre-render. Segments written as [name] are
// placeholders bound only at runtime.
type RoutePattern string

func (p RoutePattern) String() string {
	return string(p)
}

func (p RoutePattern) Placeholders() []string {
	var out []string
	for _, seg := range strings.Split(string(p), "/") {
		if isPlaceholderSegment(seg) {
			out = append(out, seg)
		}
	}
	return out
}

func (p RoutePattern) IsParameterized() bool {
	return len(p.Placeholders()) > 0
}

func isPlaceholderSegment(seg string) bool {
	return len(seg) > 2 && strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]")
}

// RouteList is fixed once built. Entries hands out copies.
type RouteList struct {
	entries []RoutePattern
}

func NewRouteList(paths ...string) RouteList {
	entries := make([]RoutePattern, len(paths))
	for i, p := range paths {
		entries[i] = RoutePattern(p)
	}
	return RouteList{entries: entries}
}

func (l RouteList) Entries() []RoutePattern {
	out := make([]RoutePattern, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l RouteList) Len() int {
	return len(l.entries)
}

func (l RouteList) Contains(p RoutePattern) bool {
	for _, e := range l.entries {
		if e == p {
			return true
		}
	}
	return false
}

func (l RouteList) Strings() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = string(e)
	}
	return out
}
