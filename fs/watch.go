package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/mosaic"
)

// Watcher reports documents created or rewritten in a directory.
type Watcher struct {
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching dir. The directory itself is watched, not
// its subdirectories.
func NewWatcher(dir string) (*Watcher, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, mosaic.Errorf(mosaic.ENOTFOUND, "directory %q not found", dir)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, mosaic.Errorf(mosaic.EINVALID, "%q is not a directory", dir)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	return &Watcher{watcher: w}, nil
}

// Watch calls fn with the path of every document written in the watched
// directory until ctx is done. A single save may be reported more than once.
func (w *Watcher) Watch(ctx context.Context, fn func(path string)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if isDocumentEvent(event) {
				fn(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func isDocumentEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return ValidateDocumentPath(event.Name) == nil
}
