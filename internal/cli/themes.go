package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/iconseek/internal/icontheme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Themes command flags
	themesBases      []string
	themesShowHidden bool
)

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List installed icon themes",
	Long: `List every icon theme found under the search bases.

A directory counts as a theme when it carries a usable index.theme file.
Themes marked hidden by their index are skipped unless --hidden is given.

Examples:
  # List themes from the discovered search bases
  iconseek themes

  # Include hidden themes
  iconseek themes --hidden

  # List themes under an explicit base
  iconseek themes --base /tmp/icons`,
	RunE: runThemes,
}

// themesShowCmd represents the themes show command
var themesShowCmd = &cobra.Command{
	Use:   "show <theme-name>",
	Short: "Show a theme's declared size buckets",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemesShow,
}

func init() {
	themesCmd.PersistentFlags().StringArrayVar(&themesBases, "base", nil, "search base directory (repeatable, replaces discovery)")
	themesCmd.Flags().BoolVar(&themesShowHidden, "hidden", false, "include themes marked hidden")
	themesCmd.AddCommand(themesShowCmd)
}

// runThemes executes the themes command.
func runThemes(cmd *cobra.Command, args []string) error {
	bases := themesBases
	if len(bases) == 0 {
		bases = icontheme.DefaultBases()
	}

	tbl := newTable("THEME", "NAME", "INHERITS", "COMMENT")
	tbl.setFlexible(3)

	seen := make(map[string]bool)
	found := 0
	for _, base := range bases {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() || seen[entry.Name()] {
				continue
			}
			seen[entry.Name()] = true

			theme := icontheme.New(entry.Name(), icontheme.WithBases(bases...))
			if theme.Index.Name == "" {
				continue
			}
			if theme.Index.Hidden && !themesShowHidden {
				continue
			}
			tbl.addRow(entry.Name(), theme.Index.Name,
				strings.Join(theme.Index.Inherits, ", "), theme.Index.Comment)
			found++
		}
	}

	if found == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No icon themes found.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), tbl.render(terminalWidth()))
	return nil
}

// runThemesShow executes the themes show command.
func runThemesShow(cmd *cobra.Command, args []string) error {
	opts := []icontheme.Option{icontheme.WithLogger(resolverLogger(cmd))}
	if len(themesBases) > 0 {
		opts = append(opts, icontheme.WithBases(themesBases...))
	}

	theme := icontheme.New(args[0], opts...)
	if theme.Index.Name == "" {
		return fmt.Errorf("theme %q not found under the search bases", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:     %s\n", theme.Index.Name)
	fmt.Fprintf(out, "Comment:  %s\n", theme.Index.Comment)
	if len(theme.Index.Inherits) > 0 {
		fmt.Fprintf(out, "Inherits: %s\n", strings.Join(theme.Index.Inherits, ", "))
	}
	if theme.Index.Example != "" {
		fmt.Fprintf(out, "Example:  %s\n", theme.Index.Example)
	}
	if theme.Index.Hidden {
		fmt.Fprintln(out, "Hidden:   true")
	}
	fmt.Fprintln(out)

	tbl := newTable("DIRECTORY", "SIZE", "TYPE", "ACCEPTS", "CONTEXT")
	for _, sub := range theme.Index.Subdirs {
		tbl.addRow(sub.Name, strconv.Itoa(sub.Size), sub.Type.String(), acceptedRange(sub), sub.Context)
	}
	fmt.Fprint(out, tbl.render(terminalWidth()))
	return nil
}

// acceptedRange renders the sizes a bucket matches exactly.
func acceptedRange(sub icontheme.Subdir) string {
	switch sub.Type {
	case icontheme.Fixed:
		return strconv.Itoa(sub.Size)
	case icontheme.Scalable:
		return fmt.Sprintf("%d-%d", sub.MinSize, sub.MaxSize)
	default:
		return fmt.Sprintf("%d-%d", sub.Size-sub.Threshold, sub.Size+sub.Threshold)
	}
}

// terminalWidth returns the width of the attached terminal, or 0 when
// stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 0
}
