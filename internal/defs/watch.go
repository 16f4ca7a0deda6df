package defs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads the library whenever a definition file in dir changes and
// publishes the result on Updates. Invalid files are logged and skipped, so
// the previous library stays in effect.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	log     *zap.Logger
	Updates chan *Library
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dir string, log *zap.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}
	watcher := &Watcher{
		dir:     dir,
		watcher: w,
		log:     log.With(zap.String("dir", dir)),
		Updates: make(chan *Library, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run reloads once events have been quiet for reloadDebounce, so an editor
// save that truncates and then writes is read in its final state.
func (w *Watcher) run() {
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	var changed string
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isDefinitionFile(event.Name) {
				continue
			}
			changed = event.Name
			timer.Reset(reloadDebounce)
		case <-timer.C:
			w.reload(changed)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("definition watcher error", zap.Error(err))
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload(changed string) {
	lib, err := Load(w.dir)
	if err != nil {
		w.log.Warn("definition reload failed", zap.String("file", changed), zap.Error(err))
		return
	}
	// Only the newest library matters; replace an undelivered one.
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- lib:
		w.log.Info("definitions reloaded", zap.String("file", changed))
	case <-w.closeCh:
	}
}

func isDefinitionFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
