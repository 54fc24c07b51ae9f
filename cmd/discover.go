package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/spf13/cobra"
)

var (
	searchText    string
	discoverLimit int
)

var (
	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	unreadableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover [root_dir]",
	Short: "Find workspace databases and preview their chat history",
	Long: `Recursively scan a directory for workspace state databases and print a
short preview of each one's chat history.

With --search-text, only databases whose chat messages contain the text
(case-insensitive) are listed, with the matching messages as context.
Corrupt or locked databases are reported and skipped; the scan always
continues.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		limit := discoverLimit
		if limit == 0 && searchText == "" {
			// Unbounded scans are only the default when searching.
			limit = 10
		}

		results, err := internal.Discover(root, searchText, limit)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println(dimStyle.Render("No results found."))
			return nil
		}

		for _, res := range results {
			fmt.Println(pathStyle.Render("DATABASE: " + res.Path))

			switch {
			case res.Err != nil:
				fmt.Println(unreadableStyle.Render(fmt.Sprintf("  unreadable: %v", res.Err)))
			case len(res.Matches) > 0:
				for _, m := range res.Matches {
					fmt.Println(matchStyle.Render(fmt.Sprintf("  [%s] %s: %s", m.SessionID, m.Role, m.Text)))
				}
			default:
				for _, line := range strings.Split(res.Preview, "\n") {
					fmt.Println("  " + line)
				}
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().StringVar(&searchText, "search-text", "", "Filter databases by message text (case-insensitive substring)")
	discoverCmd.Flags().IntVar(&discoverLimit, "limit", 0, "Maximum number of databases to inspect (0 = 10, or unlimited with --search-text)")
}
