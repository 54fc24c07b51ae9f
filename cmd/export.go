package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/iksnae/cursor-chat-export/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	latestTab bool
	tabIDs    string
)

var successStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("42")).
	Bold(true)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <state_db_path>",
	Short: "Export the chat sessions of one workspace database",
	Long: `Export the chat sessions stored in one workspace state database.

With --output-dir, one file per session is written there, named by session
id. Without it, the sessions are rendered as Markdown to the terminal.
Per-session write failures are reported at the end without aborting the
rest of the export.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := args[0]

		opts, err := exportOptions()
		if err != nil {
			return err
		}

		if outputDir == "" {
			return printSessions(dbPath, opts)
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		report, err := export.ExportDB(dbPath, outputDir, exporter, opts)
		if err != nil {
			return err
		}

		for _, failure := range report.Failures {
			fmt.Println(unreadableStyle.Render("  " + failure.Error()))
		}
		fmt.Println(successStyle.Render(fmt.Sprintf(
			"Export complete: %d of %d session(s) written to %s",
			len(report.Files), report.Sessions, outputDir)))

		if len(report.Failures) > 0 {
			internal.LogWarn("%d session(s) failed to export", len(report.Failures))
		}
		return nil
	},
}

// printSessions renders each session as Markdown in the terminal.
func printSessions(dbPath string, opts export.Options) error {
	src, err := internal.LoadSource(dbPath)
	if err != nil {
		return err
	}

	sessions := export.SelectSessions(src.Sessions, opts)
	if len(sessions) == 0 {
		fmt.Println(dimStyle.Render("No chat sessions found."))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to initialize terminal renderer: %w", err)
	}

	for i := range sessions {
		doc := internal.RenderMarkdown(&sessions[i])
		out, err := renderer.Render(doc)
		if err != nil {
			// Fall back to plain Markdown when the terminal profile fails.
			internal.LogDebug("terminal render failed: %v", err)
			out = doc
		}
		fmt.Print(out)
	}

	return nil
}

func exportOptions() (export.Options, error) {
	opts := export.Options{LatestOnly: latestTab}

	if tabIDs != "" {
		for _, part := range strings.Split(tabIDs, ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return export.Options{}, fmt.Errorf("invalid tab id %q: %w", part, err)
			}
			opts.TabIndexes = append(opts.TabIndexes, idx)
		}
	}

	return opts, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "md", "Export format (md, json, jsonl, yaml)")
	exportCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the exported files (prints to terminal when omitted)")
	exportCmd.Flags().BoolVar(&latestTab, "latest-tab", false, "Export only the most recently updated session")
	exportCmd.Flags().StringVar(&tabIDs, "tab-ids", "", "Comma-separated 1-based session positions to export, e.g. '1,3'")
}
