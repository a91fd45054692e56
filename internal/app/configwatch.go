package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigReload is delivered for every change to a watched config file.
type ConfigReload struct {
	Config Config
	Err    error
}

// WatchConfig reloads path whenever it is written or replaced and sends the
// result on the returned channel. The directory is watched rather than the
// file so editors that save via rename are seen. The channel is closed when
// ctx is done.
func WatchConfig(ctx context.Context, path string) (<-chan ConfigReload, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	out := make(chan ConfigReload, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, _, err := LoadConfig(abs)
				select {
				case out <- ConfigReload{Config: cfg, Err: err}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case out <- ConfigReload{Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
