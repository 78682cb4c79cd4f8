package icontheme

import (
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// IndexFile is the metadata file a theme directory must carry to be
// considered a theme.
const IndexFile = "index.theme"

const themeSection = "Icon Theme"

// Index is the parsed metadata of one icon theme: display strings, the
// ordered inheritance chain and the declared size buckets. A zero Index
// is valid and simply resolves nothing.
type Index struct {
	Name     string
	Comment  string
	Inherits []string
	Subdirs  []Subdir
	Hidden   bool
	Example  string
}

// loadIndex locates and parses <base>/<theme>/index.theme, trying bases
// in order and keeping the first candidate that parses. Every failure is
// skipped silently; if no base yields a usable file the zero Index is
// returned, which is not an error.
func loadIndex(bases []string, theme string) Index {
	for _, base := range bases {
		if idx, ok := parseIndexFile(filepath.Join(base, theme, IndexFile)); ok {
			return idx
		}
	}
	return Index{}
}

// parseIndexFile parses a single index file. A candidate is unusable
// when the file is missing or malformed, when the [Icon Theme] section
// is absent, or when any of the required Name, Comment and Directories
// keys is absent.
func parseIndexFile(path string) (Index, bool) {
	file, err := ini.Load(path)
	if err != nil {
		return Index{}, false
	}
	sec, err := file.GetSection(themeSection)
	if err != nil {
		return Index{}, false
	}
	if !sec.HasKey("Name") || !sec.HasKey("Comment") || !sec.HasKey("Directories") {
		return Index{}, false
	}

	idx := Index{
		Name:    sec.Key("Name").String(),
		Comment: sec.Key("Comment").String(),
		// Only the literal "true" hides a theme; absent or anything else
		// means visible. See DESIGN.md for the deviation from the field's
		// documented default.
		Hidden:  sec.Key("Hidden").String() == "true",
		Example: sec.Key("Example").String(),
	}
	if sec.HasKey("Inherits") {
		idx.Inherits = splitList(sec.Key("Inherits").String())
	}
	for _, name := range splitList(sec.Key("Directories").String()) {
		if sub, ok := parseSubdir(file, name); ok {
			idx.Subdirs = append(idx.Subdirs, sub)
		}
	}
	return idx, true
}

// parseSubdir resolves one declared directory name into a Subdir using
// that directory's own section. A missing section or an unparsable Size
// drops this subdir without affecting the rest of the theme.
func parseSubdir(file *ini.File, name string) (Subdir, bool) {
	sec, err := file.GetSection(name)
	if err != nil {
		return Subdir{}, false
	}
	size, err := sec.Key("Size").Int()
	if err != nil {
		return Subdir{}, false
	}

	sub := Subdir{
		Name:    name,
		Size:    size,
		Context: sec.Key("Context").String(),
	}
	switch sec.Key("Type").String() {
	case "Fixed":
		sub.Type = Fixed
	case "Scalable":
		sub.Type = Scalable
		sub.MinSize = intOr(sec, "MinSize", size)
		sub.MaxSize = intOr(sec, "MaxSize", size)
	default:
		sub.Type = Threshold
		sub.Threshold = intOr(sec, "Threshold", 2)
	}
	return sub, true
}

// intOr reads an integer key, falling back when it is absent or
// unparsable.
func intOr(sec *ini.Section, key string, fallback int) int {
	v, err := sec.Key(key).Int()
	if err != nil {
		return fallback
	}
	return v
}

// splitList splits a comma separated index value, trimming whitespace
// and dropping empty entries while preserving order.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
