package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func TestReadDirNativeListsEverything(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.gif", ".hidden.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	entries, err := ReadDirNative(dir)
	if err != nil {
		t.Fatalf("ReadDirNative failed: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.FullPath != filepath.Join(dir, e.Name) {
			t.Fatalf("unexpected full path %q for %q", e.FullPath, e.Name)
		}
		if e.Name == "sub" && !e.IsDir {
			t.Fatalf("expected sub to be a directory")
		}
		names = append(names, e.Name)
	}
	sort.Strings(names)
	want := []string{".hidden.png", "a.gif", "b.png", "sub"}
	if len(names) != len(want) {
		t.Fatalf("got %v want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v want %v", names, want)
		}
	}
}

func TestReadDirNativeMissingDir(t *testing.T) {
	if _, err := ReadDirNative(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestEntryIsHidden(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hidden is an attribute on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, ".dot.png")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !(Entry{Name: ".dot.png", FullPath: path}).IsHidden() {
		t.Fatalf("expected dot file to be hidden")
	}
}
