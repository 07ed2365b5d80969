// Package navigator computes the ordered candidates to try when stepping to
// the next or previous image next to the current one.
//
// The parent directory is listed afresh on every request, in the order the
// operating system enumerates it, and rotated so that it starts right after
// the current file and wraps around back to it.
package navigator

import (
	"errors"
	"fmt"
	"path/filepath"

	fsutil "github.com/kk-code-lab/huaga/internal/fs"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNoCurrentPath       = errors.New("no current path")
	ErrNoParentDirectory   = errors.New("no parent directory")
	ErrDirectoryUnreadable = errors.New("directory unreadable")
)

// Direction selects which way Candidates walks the directory.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Lister returns the entries of dir in native enumeration order.
type Lister func(dir string) ([]fsutil.Entry, error)

// Navigator resolves sibling candidates for a path.
type Navigator struct {
	list       Lister
	skipHidden bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithSkipHidden drops hidden entries, other than the current path itself,
// before the listing is rotated.
func WithSkipHidden() Option {
	return func(n *Navigator) {
		n.skipHidden = true
	}
}

// New returns a Navigator using list, or fs.ReadDirNative when list is nil.
func New(list Lister, opts ...Option) *Navigator {
	if list == nil {
		list = fsutil.ReadDirNative
	}
	n := &Navigator{list: list}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Siblings returns the parent directory listing rotated to begin with the
// entry after path and end with path. If path is not in the listing, the
// plain listing is returned.
func (n *Navigator) Siblings(path string) ([]string, error) {
	if path == "" {
		return nil, ErrNoCurrentPath
	}

	dir := filepath.Dir(path)
	if dir == "" || dir == path {
		return nil, fmt.Errorf("%w: %s", ErrNoParentDirectory, path)
	}

	entries, err := n.list(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryUnreadable, dir, err)
	}

	currentName := norm.NFC.String(filepath.Base(path))
	var before, after []string
	found := false
	for _, e := range entries {
		isCurrent := !found && norm.NFC.String(e.Name) == currentName
		if n.skipHidden && !isCurrent && e.IsHidden() {
			continue
		}
		switch {
		case isCurrent:
			found = true
			before = append(before, e.FullPath)
		case found:
			after = append(after, e.FullPath)
		default:
			before = append(before, e.FullPath)
		}
	}
	return append(after, before...), nil
}

// Next returns the candidates for stepping forward from path.
func (n *Navigator) Next(path string) ([]string, error) {
	return n.Siblings(path)
}

// Previous returns the candidates for stepping backward from path: the
// rotated listing walked in reverse, starting at the entry just before path.
func (n *Navigator) Previous(path string) ([]string, error) {
	rotated, err := n.Siblings(path)
	if err != nil {
		return nil, err
	}
	count := len(rotated)
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, rotated[(2*count-i-2)%count])
	}
	return out, nil
}

// Candidates dispatches to Next or Previous.
func (n *Navigator) Candidates(path string, dir Direction) ([]string, error) {
	if dir == Previous {
		return n.Previous(path)
	}
	return n.Next(path)
}
