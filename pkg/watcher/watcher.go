// Package watcher reloads the mesh file when it changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file and triggers a debounced callback
// on write or create events
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
	onError  func(error)
}

// New creates a watcher for the given file. The callback runs on a
// background goroutine after the file has been quiet for the debounce
// interval.
func New(path string, debounce time.Duration, callback func(string)) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	// Watch the directory so the file is picked up again after
	// editors replace it with a rename
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &FileWatcher{
		watcher:  w,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}, nil
}

// OnError sets an optional handler for watcher errors
func (fw *FileWatcher) OnError(handler func(error)) {
	fw.onError = handler
}

// Start begins delivering change events
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Name != fw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.handleChange()
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				if fw.onError != nil {
					fw.onError(err)
				}
			}
		}
	}()
}

func (fw *FileWatcher) handleChange() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		fw.callback(fw.path)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
