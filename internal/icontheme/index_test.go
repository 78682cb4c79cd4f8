package icontheme

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeIndex writes an index.theme for the given theme under base.
func writeIndex(t *testing.T, base, theme, contents string) {
	t.Helper()
	dir := filepath.Join(base, theme)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create theme dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, IndexFile), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}
}

func TestLoadIndex(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "breeze", `[Icon Theme]
Name=Breeze
Comment=Default Plasma theme
Inherits=oxygen, hicolor
Directories=16x16/actions,48x48/apps,scalable/apps
Example=folder

[16x16/actions]
Size=16
Type=Fixed
Context=Actions

[48x48/apps]
Size=48
Threshold=4

[scalable/apps]
Size=128
Type=Scalable
MinSize=16
MaxSize=256
`)

	idx := loadIndex([]string{base}, "breeze")

	if idx.Name != "Breeze" {
		t.Errorf("Name = %q, want %q", idx.Name, "Breeze")
	}
	if idx.Comment != "Default Plasma theme" {
		t.Errorf("Comment = %q, want %q", idx.Comment, "Default Plasma theme")
	}
	if want := []string{"oxygen", "hicolor"}; !reflect.DeepEqual(idx.Inherits, want) {
		t.Errorf("Inherits = %v, want %v", idx.Inherits, want)
	}
	if idx.Hidden {
		t.Error("Hidden = true, want false")
	}
	if idx.Example != "folder" {
		t.Errorf("Example = %q, want %q", idx.Example, "folder")
	}

	want := []Subdir{
		{Name: "16x16/actions", Size: 16, Type: Fixed, Context: "Actions"},
		{Name: "48x48/apps", Size: 48, Type: Threshold, Threshold: 4},
		{Name: "scalable/apps", Size: 128, Type: Scalable, MinSize: 16, MaxSize: 256},
	}
	if !reflect.DeepEqual(idx.Subdirs, want) {
		t.Errorf("Subdirs = %+v, want %+v", idx.Subdirs, want)
	}
}

func TestLoadIndexFirstUsableBaseWins(t *testing.T) {
	broken := t.TempDir()
	good := t.TempDir()
	later := t.TempDir()

	// Missing the required Comment key makes the first candidate unusable.
	writeIndex(t, broken, "adwaita", `[Icon Theme]
Name=Broken
Directories=48x48/apps

[48x48/apps]
Size=48
`)
	writeIndex(t, good, "adwaita", `[Icon Theme]
Name=Good
Comment=The usable one
Directories=48x48/apps

[48x48/apps]
Size=48
`)
	writeIndex(t, later, "adwaita", `[Icon Theme]
Name=Ignored
Comment=Never reached
Directories=48x48/apps

[48x48/apps]
Size=48
`)

	idx := loadIndex([]string{broken, good, later}, "adwaita")
	if idx.Name != "Good" {
		t.Errorf("Name = %q, want %q", idx.Name, "Good")
	}
}

func TestLoadIndexUnusableCandidates(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "not ini at all",
			contents: "{\"this\": \"is json\"",
		},
		{
			name: "missing icon theme section",
			contents: `[Something Else]
Name=X
Comment=Y
Directories=d
`,
		},
		{
			name: "missing name",
			contents: `[Icon Theme]
Comment=Y
Directories=d
`,
		},
		{
			name: "missing comment",
			contents: `[Icon Theme]
Name=X
Directories=d
`,
		},
		{
			name: "missing directories",
			contents: `[Icon Theme]
Name=X
Comment=Y
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			writeIndex(t, base, "theme", tt.contents)
			idx := loadIndex([]string{base}, "theme")
			if !reflect.DeepEqual(idx, Index{}) {
				t.Errorf("loadIndex = %+v, want zero Index", idx)
			}
		})
	}
}

func TestLoadIndexMissingEverywhere(t *testing.T) {
	idx := loadIndex([]string{t.TempDir(), t.TempDir()}, "nowhere")
	if !reflect.DeepEqual(idx, Index{}) {
		t.Errorf("loadIndex = %+v, want zero Index", idx)
	}
}

func TestParseSubdirBadSizeDropped(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "theme", `[Icon Theme]
Name=Theme
Comment=Theme
Directories=good,bad,missing

[good]
Size=22

[bad]
Size=not-a-number
`)

	idx := loadIndex([]string{base}, "theme")
	if len(idx.Subdirs) != 1 || idx.Subdirs[0].Name != "good" {
		t.Errorf("Subdirs = %+v, want only %q", idx.Subdirs, "good")
	}
}

func TestParseSubdirTypeDefaults(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "theme", `[Icon Theme]
Name=Theme
Comment=Theme
Directories=plain,odd,scalable-bare,threshold-bad

[plain]
Size=24

[odd]
Size=24
Type=Elastic

[scalable-bare]
Size=64
Type=Scalable

[threshold-bad]
Size=24
Threshold=wide
`)

	idx := loadIndex([]string{base}, "theme")
	want := []Subdir{
		{Name: "plain", Size: 24, Type: Threshold, Threshold: 2},
		{Name: "odd", Size: 24, Type: Threshold, Threshold: 2},
		{Name: "scalable-bare", Size: 64, Type: Scalable, MinSize: 64, MaxSize: 64},
		{Name: "threshold-bad", Size: 24, Type: Threshold, Threshold: 2},
	}
	if !reflect.DeepEqual(idx.Subdirs, want) {
		t.Errorf("Subdirs = %+v, want %+v", idx.Subdirs, want)
	}
}

// Only the literal string "true" hides a theme. The field's upstream
// description says absent means hidden, but deployed themes rely on
// absent meaning visible, so that is the behaviour pinned here.
func TestParseHiddenDefaultsToVisible(t *testing.T) {
	tests := []struct {
		name   string
		hidden string // empty means omit the key
		want   bool
	}{
		{name: "literal true", hidden: "true", want: true},
		{name: "capitalised True", hidden: "True", want: false},
		{name: "one", hidden: "1", want: false},
		{name: "false", hidden: "false", want: false},
		{name: "absent", hidden: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hiddenLine := ""
			if tt.hidden != "" {
				hiddenLine = "Hidden=" + tt.hidden + "\n"
			}
			contents := `[Icon Theme]
Name=Theme
Comment=Theme
Directories=d
` + hiddenLine + `
[d]
Size=16
`
			base := t.TempDir()
			writeIndex(t, base, "theme", contents)
			idx := loadIndex([]string{base}, "theme")
			if idx.Hidden != tt.want {
				t.Errorf("Hidden = %v, want %v", idx.Hidden, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain", input: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "spaces trimmed", input: " a , b ", want: []string{"a", "b"}},
		{name: "empty entries dropped", input: "a,,b,", want: []string{"a", "b"}},
		{name: "empty input", input: "", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
