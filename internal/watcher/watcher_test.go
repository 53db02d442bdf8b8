package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		base string
		want bool
	}{
		{"settings.yaml", false},
		{".settings.yaml.swp", true},
		{"settings.yaml~", true},
		{".#settings.yaml", true},
		{".settings.yaml.tmp-12345", true},
		{".hidden.yaml", false},
	}
	for _, tt := range tests {
		if got := shouldIgnore(tt.base); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.base, got, tt.want)
		}
	}
}

func TestRelevantFiltersByName(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write to target", fsnotify.Event{Name: "/cfg/settings.yaml", Op: fsnotify.Write}, true},
		{"rename onto target", fsnotify.Event{Name: "/cfg/settings.yaml", Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: "/cfg/settings.yaml", Op: fsnotify.Chmod}, false},
		{"sibling file", fsnotify.Event{Name: "/cfg/config.yaml", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevant(tt.ev, "settings.yaml"); got != tt.want {
				t.Errorf("relevant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("extra_cols: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	events, stop, err := Watch(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	// Noise in the same directory is ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-events:
		t.Fatalf("unexpected event for sibling file: %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("extra_cols: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-events:
		if filepath.Base(ev.Path) != "settings.yaml" {
			t.Errorf("event path = %q", ev.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
}

func TestStopClosesChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	events, stop, err := Watch(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	stop()

	select {
	case _, ok := <-events:
		if ok {
			t.Fatal("received event after stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after stop")
	}
}
