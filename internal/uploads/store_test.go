package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		filename string
		ok       bool
	}{
		{"photo.jpg", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"photo.png", true},
		{"photo.PNG", true},
		{"photo.GIF", false},
		{"photo.gif", false},
		{"photo", false},
		{"photo.jpg.exe", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Allowed(c.filename); got != c.ok {
			t.Errorf("Allowed(%q) = %v, want %v", c.filename, got, c.ok)
		}
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo.jpg", "my_photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\photo.jpg", "photo.jpg"},
		{"we!rd$name.png", "werdname.png"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSaveAndPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	path, err := store.Save(strings.NewReader("image-bytes"), "my photo.JPG")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != filepath.Join(dir, "my_photo.JPG") {
		t.Fatalf("unexpected stored path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
	if store.Path("my photo.JPG") != path {
		t.Fatalf("Path must resolve to the stored location")
	}
}

func TestSaveOverwritesCollisions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := store.Save(strings.NewReader("first"), "a.png"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	path, err := store.Save(strings.NewReader("second"), "a.png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Fatalf("colliding filename must overwrite, got %q", data)
	}
}
