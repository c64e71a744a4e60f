package mesh

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

// Discover recursively finds every .stl file under dir and returns their
// absolute paths, sorted.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Errorf("not a directory: %q", dir)
	}
	var files []string
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".stl") {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		files = append(files, abs)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %q", dir)
	}
	sort.Strings(files)
	return files, nil
}

type indexKey struct {
	path    string
	modTime int64
}

// Index loads and caches meshes keyed by path and modification time, so an
// overwritten asset reloads without an explicit reset.
type Index struct {
	mu     sync.Mutex
	meshes map[indexKey]*Mesh
	logger golog.Logger
}

// NewIndex returns an empty mesh index.
func NewIndex(logger golog.Logger) *Index {
	return &Index{
		meshes: map[indexKey]*Mesh{},
		logger: logger,
	}
}

// Load returns the mesh at path, from cache when fresh.
func (ix *Index) Load(path string) (*Mesh, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrap(err, "cannot stat mesh file")
	}
	key := indexKey{path: abs, modTime: info.ModTime().UnixNano()}

	ix.mu.Lock()
	if m, ok := ix.meshes[key]; ok {
		ix.mu.Unlock()
		return m, nil
	}
	ix.mu.Unlock()

	m, err := ParseSTLFile(abs)
	if err != nil {
		return nil, err
	}

	ix.mu.Lock()
	ix.meshes[key] = m
	ix.mu.Unlock()
	return m, nil
}

// LoadDir discovers and loads every STL under dir. Files that fail to parse
// are logged and skipped; a viewer renders what it can.
func (ix *Index) LoadDir(dir string) ([]string, []*Mesh, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, nil, err
	}
	var paths []string
	var meshes []*Mesh
	for _, path := range files {
		m, err := ix.Load(path)
		if err != nil {
			ix.logger.Warnw("skipping unloadable mesh", "path", path, "error", err)
			continue
		}
		paths = append(paths, path)
		meshes = append(meshes, m)
	}
	return paths, meshes, nil
}

// Clear drops every cached mesh.
func (ix *Index) Clear() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.meshes = map[indexKey]*Mesh{}
}
