package text

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/text/cases"
)

// Registry maps font identifiers to font sources. It is the lookup behind
// a font picker: Names lists what can be chosen, Lookup resolves a choice.
//
// Fonts added with AddData are parsed lazily on first lookup. Identifiers
// are matched case-insensitively, and a source can also be found by its
// full name or family name. A name that is not a registered identifier
// parses the remaining fonts before the names are compared, so the result
// never depends on earlier lookups.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
	order   []string
}

type registryEntry struct {
	name string

	mu   sync.Mutex
	data []byte
	src  *FontSource
	err  error
}

func (e *registryEntry) load() (*FontSource, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.src == nil && e.err == nil {
		e.src, e.err = NewFontSource(e.data, WithName(e.name))
		e.data = nil
	}
	return e.src, e.err
}

// loaded returns the parsed source, or nil if it has not been parsed.
func (e *registryEntry) loaded() *FontSource {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.src
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared registry preloaded with the Go font
// family from golang.org/x/image/font/gofont. "Go" is the regular face.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		for _, f := range []struct {
			name string
			data []byte
		}{
			{"Go", goregular.TTF},
			{"Go Bold", gobold.TTF},
			{"Go Italic", goitalic.TTF},
			{"Go Bold Italic", gobolditalic.TTF},
			{"Go Medium", gomedium.TTF},
			{"Go Mono", gomono.TTF},
			{"Go Mono Bold", gomonobold.TTF},
			{"Go Smallcaps", gosmallcaps.TTF},
		} {
			// Built-in data is never empty.
			_ = r.AddData(f.name, f.data)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// AddData registers raw font data under name. Parsing is deferred until
// the first Lookup. Registering an existing name replaces it.
func (r *Registry) AddData(name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	r.put(&registryEntry{name: name, data: data})
	return nil
}

// Add registers an already parsed source under its name.
func (r *Registry) Add(src *FontSource) {
	e := &registryEntry{name: src.Name(), src: src}
	r.put(e)
}

// LoadFile parses a font file and registers it under its full name.
func (r *Registry) LoadFile(path string) (*FontSource, error) {
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	r.Add(src)
	return src, nil
}

// LoadDir registers every .ttf and .otf file in dir. Files that fail to
// parse are skipped and reported in the returned error.
func (r *Registry) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("text: failed to read font directory: %w", err)
	}
	var (
		loaded int
		failed []string
	)
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".ttf" && ext != ".otf") {
			continue
		}
		if _, err := r.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			Logger().Warn("text: skipping font file", "file", entry.Name(), "err", err)
			failed = append(failed, entry.Name())
			continue
		}
		loaded++
	}
	if len(failed) > 0 {
		return loaded, fmt.Errorf("text: failed to load %s", strings.Join(failed, ", "))
	}
	return loaded, nil
}

func (r *Registry) put(e *registryEntry) {
	key := foldName(e.name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; !exists {
		r.order = append(r.order, e.name)
	}
	r.entries[key] = e
}

// Lookup resolves a font identifier. Unknown identifiers return a
// *FontResolutionError.
func (r *Registry) Lookup(name string) (*FontSource, error) {
	key := foldName(name)
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		r.loadAll()
		e = r.findLoaded(key)
	}
	if e == nil {
		return nil, &FontResolutionError{Name: name}
	}
	src, err := e.load()
	if err != nil {
		return nil, err
	}
	return src, nil
}

// loadAll parses every entry not parsed yet. Parse errors are kept in the
// entries and reported when they are looked up by identifier.
func (r *Registry) loadAll() {
	r.mu.RLock()
	entries := make([]*registryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()
	for _, e := range entries {
		_, _ = e.load()
	}
}

// findLoaded matches key against the full and family names of sources
// that have already been parsed.
func (r *Registry) findLoaded(key string) *registryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		e := r.entries[foldName(name)]
		if e == nil {
			continue
		}
		src := e.loaded()
		if src == nil {
			continue
		}
		if foldName(src.FullName()) == key || foldName(src.Family()) == key {
			return e
		}
	}
	return nil
}

// Has reports whether name is a registered identifier, full name or
// family name.
func (r *Registry) Has(name string) bool {
	key := foldName(name)
	r.mu.RLock()
	_, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return true
	}
	r.loadAll()
	return r.findLoaded(key) != nil
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if _, ok := r.entries[foldName(name)]; ok {
			names = append(names, name)
		}
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// foldName normalizes a font identifier for comparison.
func foldName(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}
