// Package watcher reports edits to a single file, such as the settings
// file, made by other programs.
//
// The parent directory is watched rather than the file itself: editors and
// atomic writers replace the file by renaming a temporary file over it,
// which drops a watch held on the old inode. Events for other names in the
// directory are discarded, and bursts are coalesced by a debounce window.
package watcher

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent once per debounced burst of changes to the watched file.
type Event struct {
	Path string
}

// Watch monitors path and sends an Event on the returned channel after a
// quiet period of debounce following the last change. The channel is
// closed when stop is called or the underlying watcher fails.
func Watch(path string, debounce time.Duration) (<-chan Event, func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	dir, name := filepath.Split(abs)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// Up to 50% jitter so several instances sharing one settings file do
	// not all reload at the same instant.
	jitterRange := debounce / 2

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !relevant(ev, name) {
					continue
				}
				d := debounce
				if jitterRange > 0 {
					d += time.Duration(rand.Int64N(int64(jitterRange)))
				}
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{Path: abs}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				if timer != nil {
					timer.Stop()
				}
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

func relevant(ev fsnotify.Event, name string) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(ev.Name)
	if shouldIgnore(base) {
		return false
	}
	return base == name
}

// shouldIgnore reports editor swap, backup and temp files.
func shouldIgnore(base string) bool {
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, ".swx") || strings.HasSuffix(base, "~") ||
		strings.HasPrefix(base, ".#") || strings.HasSuffix(base, ".lock") {
		return true
	}
	// Temp files from our own atomic writes.
	return strings.HasPrefix(base, ".") && strings.Contains(base, ".tmp-")
}
