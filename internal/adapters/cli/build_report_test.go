package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestBuildReportMinimal(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutputTo(&buf, &buf)

	report := NewBuildReport(out, &buf, "build")
	step := report.StartStep("Rendering pages")
	report.EndStep(step, true, "")
	report.SetPageCount(3)
	report.SetSkippedCount(2)
	report.Render()

	got := buf.String()
	for _, want := range []string{"✓ 3 pages prerendered", "2 dynamic routes skipped", "Build complete in", "Output: build"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, got)
		}
	}
}

func TestBuildReportVerbose(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutputTo(&buf, &buf)

	report := NewBuildReport(out, &buf, "")
	step := report.StartStep("Writing output")
	report.EndStep(step, false, "disk full")
	report.AddError("/roadmap", "Failed to write page", []string{"disk full", "disk full"})
	report.Render()

	got := buf.String()
	for _, want := range []string{"✗ Writing output", "Errors (1):", "/roadmap", "disk full (2 occurrences)", "Build failed after"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, got)
		}
	}
}

func TestBuildReportWarnings(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutputTo(&buf, &buf)

	report := NewBuildReport(out, &buf, "build")
	step := report.StartStep("Rendering pages")
	report.EndStep(step, true, "")
	report.SetPageCount(2)
	report.AddWarning("/old", "Redirect written as refresh page", []string{"/roadmap"})
	report.Render()

	got := buf.String()
	for _, want := range []string{"Warnings (1):", "⚠ /old", "Redirect written as refresh page", "• /roadmap", "Build complete in"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Errors") {
		t.Errorf("Expected no errors section, got:\n%s", got)
	}
}

func TestDeduplicateStringsKeepsOrder(t *testing.T) {
	got := deduplicateStrings([]string{"b", "a", "b", "c"})
	want := []string{"b (2 occurrences)", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestOutputPlainText(t *testing.T) {
	var out, errOut bytes.Buffer
	o := NewOutputTo(&out, &errOut)

	o.PrintHeader("Prerender")
	o.PrintStep("", "Target: %s", "app")
	o.PrintFile("/roadmap")
	o.PrintError("bad %d", 1)
	o.PrintRaw("404 /settings")

	if got := out.String(); got != "Prerender\n\n  Target: app\n    /roadmap\n" {
		t.Errorf("Unexpected stdout %q", got)
	}
	if got := errOut.String(); got != "  ✗ bad 1\n404 /settings\n" {
		t.Errorf("Unexpected stderr %q", got)
	}
}
