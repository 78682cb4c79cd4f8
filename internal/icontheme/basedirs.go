package icontheme

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultBases returns the ordered list of directories searched for
// themes when none are supplied explicitly. Highest priority first:
// $HOME/.icons, then each $XDG_DATA_DIRS entry with /icons appended,
// then /usr/share/pixmaps.
func DefaultBases() []string {
	bases := []string{"/usr/share/pixmaps"}

	if dataDirs := os.Getenv("XDG_DATA_DIRS"); dataDirs != "" {
		var xdg []string
		for _, dir := range strings.Split(dataDirs, ":") {
			if dir != "" {
				xdg = append(xdg, filepath.Join(dir, "icons"))
			}
		}
		bases = append(xdg, bases...)
	}

	if home := os.Getenv("HOME"); home != "" {
		bases = append([]string{filepath.Join(home, ".icons")}, bases...)
	}
	return bases
}
