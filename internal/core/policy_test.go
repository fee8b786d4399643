package core

import (
	"errors"
	"testing"
)

func TestClassifyPrerenderError(t *testing.T) {
	tests := []struct {
		name    string
		event   PrerenderErrorEvent
		want    DecisionAction
		wantMsg string
	}{
		{
			name:  "network placeholder is suppressed",
			event: PrerenderErrorEvent{Path: "/workspace/[network_id]", Message: "404"},
			want:  DecisionSuppress,
		},
		{
			name:    "concrete workspace id fails",
			event:   PrerenderErrorEvent{Path: "/workspace/42", Message: "404"},
			want:    DecisionFail,
			wantMsg: "404",
		},
		{
			name:    "literal page fails with original message",
			event:   PrerenderErrorEvent{Path: "/roadmap", Message: "render crashed"},
			want:    DecisionFail,
			wantMsg: "render crashed",
		},
		{
			name:  "several markers still suppress",
			event: PrerenderErrorEvent{Path: "/workspace/[network_id]/machine/[machine_id]", Message: "x"},
			want:  DecisionSuppress,
		},
		{
			name:  "new scan flow is suppressed",
			event: PrerenderErrorEvent{Path: "/workspace/[network_id]/newscan", Message: "x"},
			want:  DecisionSuppress,
		},
		{
			name:  "port placeholder alone is suppressed",
			event: PrerenderErrorEvent{Path: "/port/[port_id]", Message: "x"},
			want:  DecisionSuppress,
		},
		{
			name:    "settings fails",
			event:   PrerenderErrorEvent{Path: "/settings", Message: "boom"},
			want:    DecisionFail,
			wantMsg: "boom",
		},
		{
			name:    "unlisted placeholder is not suppressed",
			event:   PrerenderErrorEvent{Path: "/users/[user_id]", Message: "404 /users/[user_id]"},
			want:    DecisionFail,
			wantMsg: "404 /users/[user_id]",
		},
		{
			name:    "referrer containing a marker is ignored",
			event:   PrerenderErrorEvent{Path: "/settings", Referrer: "/workspace/[network_id]", Message: "boom"},
			want:    DecisionFail,
			wantMsg: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPrerenderError(tt.event)
			if got.Action != tt.want {
				t.Fatalf("Expected %s, got %s", tt.want, got.Action)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, got.Message)
			}

			again := ClassifyPrerenderError(tt.event)
			if again != got {
				t.Errorf("Expected identical decision on second call, got %+v then %+v", got, again)
			}
		})
	}
}

func TestDecisionErr(t *testing.T) {
	event := PrerenderErrorEvent{Path: "/roadmap", Referrer: "/", Message: "render crashed"}

	if err := Suppress().Err(event); err != nil {
		t.Errorf("Expected nil error for suppress, got %v", err)
	}

	err := ClassifyPrerenderError(event).Err(event)
	if err == nil {
		t.Fatal("Expected error for fail decision")
	}
	if err.Error() != "render crashed" {
		t.Errorf("Expected raw message, got %q", err.Error())
	}

	var fatal *FatalPrerenderError
	if !errors.As(err, &fatal) {
		t.Fatalf("Expected *FatalPrerenderError, got %T", err)
	}
	if fatal.Event.Path != "/roadmap" || fatal.Event.Referrer != "/" {
		t.Errorf("Expected event to be carried, got %+v", fatal.Event)
	}
}

func TestIgnoreMarkers(t *testing.T) {
	handler := IgnoreMarkers(DynamicRouteMarkers...)
	paths := []string{
		"/",
		"/roadmap",
		"/workspace/[network_id]",
		"/workspace/[network_id]/machine/[machine_id]/port/[port_id]",
		"/users/[user_id]",
	}
	for _, p := range paths {
		event := PrerenderErrorEvent{Path: p, Message: "m"}
		if got, want := handler(event), ClassifyPrerenderError(event); got != want {
			t.Errorf("%s: expected %+v, got %+v", p, want, got)
		}
	}

	custom := IgnoreMarkers("[user_id]", "")
	if !custom(PrerenderErrorEvent{Path: "/users/[user_id]"}).Suppressed() {
		t.Error("Expected custom marker to suppress")
	}
	if custom(PrerenderErrorEvent{Path: "/workspace/[network_id]"}).Suppressed() {
		t.Error("Expected marker outside the custom list to fail")
	}
	if custom(PrerenderErrorEvent{Path: "/"}).Suppressed() {
		t.Error("Expected empty marker to be ignored")
	}
}

func TestFailOnError(t *testing.T) {
	d := FailOnError(PrerenderErrorEvent{Path: "/workspace/[network_id]", Message: "404"})
	if d.Action != DecisionFail || d.Message != "404" {
		t.Errorf("Expected fail with 404, got %+v", d)
	}
}

func TestFormatHTTPError(t *testing.T) {
	if got := FormatHTTPError(404, "/workspace/[network_id]", ""); got != "404 /workspace/[network_id]" {
		t.Errorf("Unexpected message %q", got)
	}
	if got := FormatHTTPError(500, "/settings", "/"); got != "500 /settings (linked from /)" {
		t.Errorf("Unexpected message %q", got)
	}
}
