// Package icontheme resolves abstract icon names and pixel sizes into
// concrete image files, following the freedesktop.org icon theme
// specification: per-theme size buckets, theme inheritance chains, the
// hicolor fallback theme and unthemed fallback directories.
//
// Resolution is a pure filesystem walk. Nothing is cached between
// calls, so a Theme can be constructed and used freely from multiple
// goroutines as long as each goroutine uses its own instance.
package icontheme

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// FallbackTheme is the base theme searched after a theme and its full
// inheritance chain yield no result.
const FallbackTheme = "hicolor"

// extensions are probed innermost and in this priority order for every
// candidate directory.
var extensions = []string{"png", "svg", "xpm"}

// Theme binds a theme name to the ordered search bases it resolves
// against, plus its parsed index. Immutable after construction except
// through Refresh, which replaces the index wholesale.
type Theme struct {
	Name  string
	Bases []string
	Index Index

	log hclog.Logger
}

type themeConfig struct {
	bases  []string
	filter func([]string) []string
	log    hclog.Logger
}

// Option configures a Theme during construction.
type Option func(*themeConfig)

// WithBases supplies an explicit search base list, highest priority
// first, instead of the environment-derived defaults.
func WithBases(bases ...string) Option {
	return func(c *themeConfig) { c.bases = bases }
}

// WithBaseFilter installs a transform applied to the base list before
// it is frozen into the theme. The transform may filter or reorder.
func WithBaseFilter(filter func([]string) []string) Option {
	return func(c *themeConfig) { c.filter = filter }
}

// WithLogger routes resolution tracing to the given logger. The default
// discards everything.
func WithLogger(log hclog.Logger) Option {
	return func(c *themeConfig) { c.log = log }
}

// New constructs a theme and parses its index from the first base that
// carries a usable index file. A theme with no usable index anywhere is
// still valid; its lookups find nothing and fall through to the
// fallback chain.
func New(name string, opts ...Option) *Theme {
	cfg := themeConfig{log: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	bases := cfg.bases
	if bases == nil {
		bases = DefaultBases()
	}
	if cfg.filter != nil {
		bases = cfg.filter(bases)
	}

	t := &Theme{Name: name, Bases: bases, log: cfg.log}
	t.Index = loadIndex(bases, name)
	return t
}

// Refresh re-parses the theme's index from disk, replacing it
// wholesale. Not safe to call concurrently with lookups on the same
// instance.
func (t *Theme) Refresh() {
	t.Index = loadIndex(t.Bases, t.Name)
}

// FindIcon resolves an icon name and requested pixel size to a file
// path. Search order: this theme, its inherited themes depth-first in
// declared order, the hicolor fallback theme, then unthemed files
// directly under the search bases. The boolean is false when nothing
// was found; absence is not an error.
func (t *Theme) FindIcon(name string, size int) (string, bool) {
	seen := make(map[string]bool)
	if path, ok := t.findIcon(name, size, seen); ok {
		return path, true
	}
	if !seen[FallbackTheme] {
		fallback := New(FallbackTheme, WithBases(t.Bases...), WithLogger(t.log))
		if path, ok := fallback.findIcon(name, size, seen); ok {
			return path, true
		}
	}
	return lookupFallbackIcon(name, t.Bases)
}

// findIcon probes this theme, then recurses through its inheritance
// chain. Each inherited theme is constructed fresh against the same
// base list; seen guards against inheritance cycles and diamond
// inheritance by probing every theme at most once per resolution.
func (t *Theme) findIcon(name string, size int, seen map[string]bool) (string, bool) {
	if seen[t.Name] {
		return "", false
	}
	seen[t.Name] = true

	if path, ok := t.lookupIcon(name, size); ok {
		return path, true
	}
	for _, parent := range t.Index.Inherits {
		p := New(parent, WithBases(t.Bases...), WithLogger(t.log))
		if path, ok := p.findIcon(name, size, seen); ok {
			return path, true
		}
	}
	return "", false
}

// lookupIcon probes the theme's declared size buckets for the icon.
// The exact pass returns the first existing file whose bucket matches
// the requested size, iterating buckets outermost, bases, then
// extensions. If no bucket matches, a second pass over the same order
// returns the existing candidate with the smallest size distance; ties
// keep the earlier candidate.
func (t *Theme) lookupIcon(name string, size int) (string, bool) {
	for _, sub := range t.Index.Subdirs {
		if !sub.Matches(size) {
			continue
		}
		for _, base := range t.Bases {
			for _, ext := range extensions {
				path := filepath.Join(base, t.Name, sub.Name, name+"."+ext)
				if fileExists(path) {
					t.log.Debug("exact size match", "theme", t.Name, "icon", name, "size", size, "path", path)
					return path, true
				}
			}
		}
	}

	bestDist := -1
	bestPath := ""
	for _, sub := range t.Index.Subdirs {
		for _, base := range t.Bases {
			for _, ext := range extensions {
				path := filepath.Join(base, t.Name, sub.Name, name+"."+ext)
				if !fileExists(path) {
					continue
				}
				if d := sub.Distance(size); bestDist < 0 || d < bestDist {
					bestDist = d
					bestPath = path
				}
			}
		}
	}
	if bestPath != "" {
		t.log.Debug("closest size match", "theme", t.Name, "icon", name, "size", size, "distance", bestDist, "path", bestPath)
		return bestPath, true
	}
	return "", false
}

// lookupFallbackIcon probes for unthemed icons directly under each
// base, extensions innermost.
func lookupFallbackIcon(name string, bases []string) (string, bool) {
	for _, base := range bases {
		for _, ext := range extensions {
			path := filepath.Join(base, name+"."+ext)
			if fileExists(path) {
				return path, true
			}
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
