package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/score"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <plugin>",
	Short: "Show the best score for a plugin",
	Long: `Display the saved best score for the specified plugin.

Examples:
  llizardgui scores survivors
  llizardgui scores blocks`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	id := args[0]

	// Check if the plugin exists
	if !plugin.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown plugin %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'llizardgui list' to see available plugins.")
		os.Exit(1)
	}

	store, err := score.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}

	best := store.Best(id)
	if best == 0 {
		fmt.Printf("No score recorded for %q yet.\n", id)
		return
	}
	fmt.Printf("Best for %q: %d\n", id, best)
}
