package fs

import (
	"os"
	"path/filepath"
)

// Entry represents a single directory entry on disk.
type Entry struct {
	Name     string
	FullPath string
	IsDir    bool
	Mode     os.FileMode
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// ReadDirNative lists dir in the order the operating system enumerates it.
// Unlike os.ReadDir the result is not sorted.
func ReadDirNative(dir string) ([]Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dirEntries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		name := e.Name()
		entries = append(entries, Entry{
			Name:     name,
			FullPath: filepath.Join(dir, name),
			IsDir:    e.IsDir(),
			Mode:     e.Type(),
		})
	}
	return entries, nil
}
