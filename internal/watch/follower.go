// Package watch reports changes to the image currently on screen.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long a file must stay quiet before a change is
// reported. Editors and encoders write in several chunks.
const DefaultSettle = 75 * time.Millisecond

var ErrClosed = errors.New("follower closed")

// Follower watches the parent directory of one file and calls OnChange when
// that file is written or replaced.
type Follower struct {
	onChange func(path string)
	onError  func(error)
	settle   time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	dir     string
	file    string
	pending *time.Timer
	closed  bool
	done    chan struct{}
}

// Option configures a Follower.
type Option func(*Follower)

// WithSettle overrides DefaultSettle.
func WithSettle(d time.Duration) Option {
	return func(f *Follower) { f.settle = d }
}

// WithErrorHandler receives watcher errors. They are dropped otherwise.
func WithErrorHandler(fn func(error)) Option {
	return func(f *Follower) { f.onError = fn }
}

// NewFollower starts a watcher. Nothing is watched until Follow is called.
func NewFollower(onChange func(path string), opts ...Option) (*Follower, error) {
	if onChange == nil {
		return nil, errors.New("watch: nil change handler")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	f := &Follower{
		onChange: onChange,
		settle:   DefaultSettle,
		watcher:  watcher,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	go f.loop()
	return f, nil
}

// Follow switches the watched file to path. The directory watch is only
// replaced when path lives somewhere else.
func (f *Follower) Follow(path string) error {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if dir != f.dir {
		if f.dir != "" {
			_ = f.watcher.Remove(f.dir)
		}
		if err := f.watcher.Add(dir); err != nil {
			f.dir = ""
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		f.dir = dir
	}
	if f.file != path && f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
	f.file = path
	return nil
}

// Current returns the followed file.
func (f *Follower) Current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file
}

// Close stops the watcher and any pending notification.
func (f *Follower) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
	f.mu.Unlock()

	err := f.watcher.Close()
	<-f.done
	return err
}

func (f *Follower) loop() {
	defer close(f.done)
	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			f.schedule(filepath.Clean(event.Name))
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			if f.onError != nil {
				f.onError(err)
			}
		}
	}
}

func (f *Follower) schedule(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || name != f.file {
		return
	}
	if f.pending != nil {
		f.pending.Reset(f.settle)
		return
	}
	f.pending = time.AfterFunc(f.settle, func() { f.fire(name) })
}

func (f *Follower) fire(name string) {
	f.mu.Lock()
	if f.closed || name != f.file {
		f.mu.Unlock()
		return
	}
	f.pending = nil
	f.mu.Unlock()
	f.onChange(name)
}
