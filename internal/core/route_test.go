package core

import (
	"reflect"
	"testing"
)

func TestRoutePatternPlaceholders(t *testing.T) {
	p := RoutePattern("/workspace/[network_id]/machine/[machine_id]/port")
	want := []string{"[network_id]", "[machine_id]"}
	if got := p.Placeholders(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if !p.IsParameterized() {
		t.Error("Expected parameterized route")
	}
	if RoutePattern("/workspace/1").IsParameterized() {
		t.Error("Expected literal route")
	}
	if RoutePattern("/odd/[]").IsParameterized() {
		t.Error("Expected empty brackets not to count as a placeholder")
	}
}

func TestRouteListIsImmutable(t *testing.T) {
	src := []string{"/", "/roadmap"}
	list := NewRouteList(src...)

	src[0] = "/changed"
	entries := list.Entries()
	entries[1] = "/changed"

	if got := list.Strings(); !reflect.DeepEqual(got, []string{"/", "/roadmap"}) {
		t.Errorf("Expected list to be unchanged, got %v", got)
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", list.Len())
	}
	if !list.Contains("/roadmap") || list.Contains("/changed") {
		t.Error("Contains returned unexpected result")
	}
}
