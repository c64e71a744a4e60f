package urdf

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/edaniels/golog"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/hiwinstudio/urdfkit/utils"
)

type cacheKey struct {
	path    string
	modTime int64
	opts    ParseOptions
}

// ModelCache memoizes parsed models keyed by source path, modification time
// and parse options, so a re-saved file or a different option set re-parses
// without an explicit call. Cached models
// are immutable and safe to share across goroutines; population on a miss is
// last-write-wins.
type ModelCache struct {
	mu     sync.Mutex
	models map[cacheKey]*Model
	logger golog.Logger
}

// NewModelCache returns an empty cache.
func NewModelCache(logger golog.Logger) *ModelCache {
	return &ModelCache{
		models: map[cacheKey]*Model{},
		logger: logger,
	}
}

// Load returns the cached model for path, parsing it on a miss. A failed
// parse leaves the cache untouched.
func (c *ModelCache) Load(path string, opts ParseOptions) (*Model, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, newParseError(err, "failed to stat URDF file")
	}
	key := cacheKey{path: abs, modTime: info.ModTime().UnixNano(), opts: opts}

	c.mu.Lock()
	if model, ok := c.models[key]; ok {
		c.mu.Unlock()
		return model, nil
	}
	c.mu.Unlock()

	model, err := ParseFile(abs, opts)
	if err != nil {
		return nil, err
	}
	model.Diagnostics.Log(c.logger)

	c.mu.Lock()
	c.models[key] = model
	c.mu.Unlock()
	return model, nil
}

// Invalidate drops every cached entry for the given path.
func (c *ModelCache) Invalidate(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.models {
		if key.path == abs {
			delete(c.models, key)
		}
	}
}

// Clear drops every cached entry.
func (c *ModelCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models = map[cacheKey]*Model{}
}

// Len returns the number of cached entries.
func (c *ModelCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.models)
}

// Watch invalidates the cache entry for path whenever the file is written or
// renamed, for long-lived processes that want fresh models without polling.
// Close the returned watcher to stop.
func (c *ModelCache) Watch(path string) (*CacheWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}
	// watch the directory; editors often replace the file rather than write it
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		utils.UncheckedError(fsWatcher.Close())
		return nil, errors.Wrapf(err, "failed to watch %q", filepath.Dir(abs))
	}

	watcher := &CacheWatcher{fsWatcher: fsWatcher, done: make(chan struct{})}
	go func() {
		defer close(watcher.done)
		for {
			select {
			case event, ok := <-fsWatcher.Events:
				if !ok {
					return
				}
				if event.Name != abs {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					c.logger.Debugw("invalidating cached model", "path", abs, "op", event.Op.String())
					c.Invalidate(abs)
				}
			case err, ok := <-fsWatcher.Errors:
				if !ok {
					return
				}
				c.logger.Warnw("model watch error", "path", abs, "error", err)
			}
		}
	}()
	return watcher, nil
}

// CacheWatcher invalidates cache entries in response to file events.
type CacheWatcher struct {
	fsWatcher *fsnotify.Watcher
	done      chan struct{}
}

// Close stops watching and waits for the event loop to exit.
func (w *CacheWatcher) Close() error {
	err := w.fsWatcher.Close()
	<-w.done
	return err
}
