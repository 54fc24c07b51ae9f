package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/spf13/cobra"
)

var (
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that workspace storage can be located and read",
	Long: `Verify that the Cursor workspace storage directory exists, count the
workspace databases under it, and report how many chat sessions are
readable. Useful for debugging storage issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("Cursor Chat Export Health Check"))
		fmt.Println()

		fmt.Println(infoStyle.Render("Step 1: Resolving workspace storage..."))
		root, err := internal.ResolveWorkspaceStorage(configFile)
		if err != nil {
			return fmt.Errorf("workspace storage not found: %w", err)
		}
		fmt.Println(successStyle.Render("  storage directory: " + root))
		fmt.Println()

		fmt.Println(infoStyle.Render("Step 2: Scanning workspace databases..."))
		var databases, unreadable, sessions int
		for res := range internal.ScanSources(root) {
			databases++
			if res.Err != nil {
				unreadable++
				internal.LogDebug("unreadable database %s: %v", res.Path, res.Err)
				continue
			}
			sessions += len(res.Source.Sessions)
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("  %d database(s) found", databases)))
		if unreadable > 0 {
			fmt.Println(warningStyle.Render(fmt.Sprintf("  %d database(s) unreadable", unreadable)))
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("  %d chat session(s) readable", sessions)))

		if databases == 0 {
			fmt.Println()
			fmt.Println(warningStyle.Render("No workspace databases found. Has Cursor been used on this machine?"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
