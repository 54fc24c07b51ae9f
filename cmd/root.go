package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFile string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursor-chat-export",
	Short: "Export Cursor IDE AI chat history from workspace databases",
	Long: `Extract AI chat transcripts from the SQLite state databases Cursor
keeps per workspace, and render them as Markdown.

Commands:
  discover     Scan a directory tree for workspace databases and preview or
               search their chat history
  export       Export the chat sessions of one database to files, or print
               them to the terminal
  export-all   Export every workspace database under a storage directory
  healthcheck  Verify the default storage location is readable

When no directory or database path is given, the platform Cursor
workspaceStorage directory is used.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config overriding storage directories")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveRoot returns the storage root to scan: the explicit argument when
// given, else the configured or platform default workspaceStorage dir.
func resolveRoot(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return internal.ResolveWorkspaceStorage(configFile)
}
