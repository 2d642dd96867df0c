package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ErrPageNotFound is returned for paths with no page file.
var ErrPageNotFound = errors.New("server: page not found")

// Pages serves HTML files from a directory and caches their contents until
// the watcher reports a change.
type Pages struct {
	dir string
	log zerolog.Logger

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewPages creates a page store rooted at dir.
func NewPages(dir string, log zerolog.Logger) *Pages {
	return &Pages{
		dir:   dir,
		log:   log,
		cache: make(map[string][]byte),
	}
}

// Resolve maps a URL path to a page file name relative to the directory:
// "/" is index.html, "/about" is about.html or about/index.html.
func (p *Pages) Resolve(urlPath string) (string, error) {
	clean := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	candidates := []string{clean + ".html", path.Join(clean, "index.html")}
	if clean == "" {
		candidates = []string{"index.html"}
	} else if strings.HasSuffix(clean, ".html") {
		candidates = []string{clean}
	}

	for _, name := range candidates {
		info, err := os.Stat(filepath.Join(p.dir, filepath.FromSlash(name)))
		if err == nil && !info.IsDir() {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPageNotFound, urlPath)
}

// Get returns the content of the named page.
func (p *Pages) Get(name string) ([]byte, error) {
	p.mu.RLock()
	data, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return data, nil
	}

	data, err := os.ReadFile(filepath.Join(p.dir, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPageNotFound, name)
		}
		return nil, err
	}

	p.mu.Lock()
	p.cache[name] = data
	p.mu.Unlock()
	return data, nil
}

// List returns the page file names in the directory.
func (p *Pages) List() ([]string, error) {
	var out []string
	err := filepath.WalkDir(p.dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".html") {
			rel, err := filepath.Rel(p.dir, file)
			if err != nil {
				return err
			}
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	return out, err
}

// Reset drops every cached page.
func (p *Pages) Reset() {
	p.mu.Lock()
	p.cache = make(map[string][]byte)
	p.mu.Unlock()
}

// Cached reports the number of cached pages.
func (p *Pages) Cached() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}

// Watch resets the cache whenever a file below the directory changes. It
// blocks until ctx is done. ready, if non-nil, is closed once the watcher is
// registered.
func (p *Pages) Watch(ctx context.Context, ready chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("server: create watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(p.dir, func(dir string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(dir)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("server: watch %s: %w", p.dir, err)
	}
	if ready != nil {
		close(ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			p.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("page changed")
			p.Reset()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.log.Error().Err(err).Msg("page watcher error")
		}
	}
}
