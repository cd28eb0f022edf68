package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pautown/llizard-plugins/plugin"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available plugins",
	Long:  `Shows every plugin registered with the host.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	plugins := plugin.List()

	if len(plugins) == 0 {
		fmt.Println("No plugins available.")
		return
	}

	fmt.Println("Available plugins:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range plugins {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	// Print plugins
	for _, p := range plugins {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'llizardgui --plugin <id>' to launch one directly.")
}
