package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/scribly/scribly-cli/pkg/files"
	"github.com/scribly/scribly-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "scribly [file]",
	Short: "Minimal terminal text editor",
	Long:  `Scribly is a minimal terminal text editor: open a file, edit it, save it back. With no argument it starts with an empty unsaved document.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := files.LoadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load settings, using defaults: %v\n", err)
			settings = nil
		}

		startPath := ""
		if len(args) == 1 {
			startPath = args[0]
		}

		app := tui.NewApp(settings, startPath)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Scribly",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Scribly version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
