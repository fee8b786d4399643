package fs

import (
	"errors"
	iofs "io/fs"
	"reflect"
	"testing"
)

func TestMemFileSystem(t *testing.T) {
	fs := NewMemFileSystem()

	if err := fs.WriteFile("build/index.html", []byte("home"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile("build/roadmap/index.html", []byte("roadmap"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile("other/a.txt", []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := fs.ReadFile("build/roadmap/index.html")
	if err != nil || string(data) != "roadmap" {
		t.Errorf("Expected roadmap, got %q (%v)", data, err)
	}

	if got := fs.Paths("build"); !reflect.DeepEqual(got, []string{"index.html", "roadmap/index.html"}) {
		t.Errorf("Unexpected paths %v", got)
	}

	if err := fs.RemoveAll("build"); err != nil {
		t.Fatal(err)
	}
	if fs.FileExists("build/index.html") {
		t.Error("Expected build dir to be removed")
	}
	if !fs.FileExists("other/a.txt") {
		t.Error("Expected unrelated file to survive")
	}

	_, err = fs.ReadFile("build/index.html")
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
