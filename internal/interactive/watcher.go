package interactive

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/knowhow-tools/probe/internal/log"
)

// FileWatcher watches the fixture file and fires a callback on change
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
}

func NewFileWatcher(filePath string, onChange func()) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the specific file
	err = watcher.Add(filePath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	// Also watch the directory: many editors replace the file on save
	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		log.Warn("couldn't watch directory", "dir", dir, "error", err.Error())
	}

	return &FileWatcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
	}, nil
}

func (fw *FileWatcher) Start(ctx context.Context) {
	// Debounce timer to avoid multiple rapid events
	var debounceTimer *time.Timer
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) == filepath.Clean(fw.filePath) {
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if debounceTimer != nil {
						debounceTimer.Stop()
					}
					debounceTimer = time.AfterFunc(debounceDelay, fw.onChange)
				}
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", "error", err.Error())
		}
	}
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
