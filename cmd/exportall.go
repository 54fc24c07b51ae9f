package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/iksnae/cursor-chat-export/internal/export"
	"github.com/spf13/cobra"
)

var exportAllOutputDir string

// exportAllCmd represents the export-all command
var exportAllCmd = &cobra.Command{
	Use:   "export-all [root_dir]",
	Short: "Export every workspace database under a storage directory",
	Long: `Walk a storage directory for workspace state databases and export each
one's chat sessions as Markdown, into one subdirectory per workspace.

Unreadable databases are reported and skipped; the run reports how many
workspaces exported successfully.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		exporter := &export.MarkdownExporter{}
		var processed, succeeded int

		for res := range internal.ScanSources(root) {
			processed++
			workspaceID := filepath.Base(filepath.Dir(res.Path))

			if res.Err != nil {
				internal.LogError("failed to read %s: %v", res.Path, res.Err)
				continue
			}

			outDir := filepath.Join(exportAllOutputDir, workspaceID)
			report, err := export.ExportDB(res.Path, outDir, exporter, export.Options{})
			if err != nil {
				internal.LogError("failed to export %s: %v", res.Path, err)
				continue
			}

			internal.LogInfo("exported %d session(s) from %s", len(report.Files), workspaceID)
			succeeded++
		}

		if processed == 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("No %s files found in %s", internal.StateDBName, root)))
			return nil
		}

		fmt.Println(successStyle.Render(fmt.Sprintf(
			"Export completed: %d/%d workspace(s) processed successfully", succeeded, processed)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportAllCmd)
	exportAllCmd.Flags().StringVarP(&exportAllOutputDir, "output-dir", "o", "./out", "Base directory for the exported workspaces")
}
