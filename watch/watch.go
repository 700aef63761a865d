// Package watch signals re-renders when a note file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/juruen/vecnote/log"
)

// Debounce window: editors tend to produce bursts of write events for
// a single save.
const settleDelay = 200 * time.Millisecond

// File invokes fn once for the initial state and again after every
// change to path, until ctx is done. Renders triggered this way are
// independent, non-overlapping invocations.
func File(ctx context.Context, path string, fn func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "can't create watcher")
	}
	defer w.Close()

	// Watch the directory, not the file: most editors save by
	// replacing the file, which drops a watch on the inode.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return errors.Wrapf(err, "can't watch %s", dir)
	}

	fn(path)

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var settle *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(ev.Name)
			if name != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Trace.Println("change detected:", ev)
			if settle != nil {
				settle.Stop()
			}
			settle = time.AfterFunc(settleDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			fn(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warning.Println("watch error:", err)
		}
	}
}
