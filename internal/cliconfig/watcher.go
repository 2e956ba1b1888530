package cliconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/appengine/pkg/log"
)

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	mu sync.Mutex

	path     string
	delay    time.Duration
	logger   log.Logger
	onChange func(FileConfig)

	fsw      *fsnotify.Watcher
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer

	// reloadMu is held for a whole reload; closed is set under it by Close.
	reloadMu sync.Mutex
	closed   bool
}

// Watch starts watching path. onChange receives the reparsed file after
// each burst of writes settles for delay. A file that fails to parse is
// logged and skipped.
func Watch(ctx context.Context, path string, delay time.Duration, logger log.Logger, onChange func(FileConfig)) (*Watcher, error) {
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		path:     path,
		delay:    delay,
		logger:   log.Or(logger),
		onChange: onChange,
		fsw:      fsw,
		cancel:   cancel,
	}
	w.wg.Add(1)
	go w.loop(watchCtx)
	return w, nil
}

// Close stops the watcher. It waits for a reload already in progress, and
// onChange is never called once Close has returned. onChange must not call
// Close.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.fsw.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	w.reloadMu.Lock()
	w.closed = true
	w.reloadMu.Unlock()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		if ctx.Err() != nil {
			return
		}
		w.reload()
	})
}

func (w *Watcher) reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()
	if w.closed {
		return
	}

	fc, err := LoadFileConfig(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", log.String("path", w.path), log.Err(err))
		return
	}
	w.logger.Info("config reloaded", log.String("path", w.path))
	if w.onChange != nil {
		w.onChange(fc)
	}
}
