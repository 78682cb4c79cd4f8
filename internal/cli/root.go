// Package cli provides the command-line interface for iconseek.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/iconseek/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iconseek",
	Short: "Resolve themed icon names to files",
	Long: `Iconseek resolves abstract icon names (such as "edit-copy") and a requested
pixel size into concrete image files, following the freedesktop.org icon
theme specification: per-theme size buckets, theme inheritance chains, the
hicolor fallback theme and unthemed fallback directories.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the fully wired root command. This is called by
// main.main().
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable resolution tracing on stderr")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(themesCmd)
}

// resolverLogger returns the logger handed to the resolver: debug level
// on stderr when --verbose is set, otherwise everything is discarded.
func resolverLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "iconseek",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.NewNullLogger()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
