// llizardgui hosts the llizard plugin collection on a desktop window.
//
// Usage:
//
//	llizardgui                  - Open the plugin launcher
//	llizardgui list             - List available plugins
//	llizardgui scores <plugin>  - Show the best score for a plugin
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.llizardgui/config.yaml)
//	--plugin <id>    - Launch straight into a plugin
//	--seed <value>   - Pin the RNG seed for reproducible runs
//	--scale <n>      - Window scale for the 800x480 surface
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pautown/llizard-plugins/host"

	// Import plugins to register them
	_ "github.com/pautown/llizard-plugins/blocks"
	_ "github.com/pautown/llizard-plugins/quiz"
	_ "github.com/pautown/llizard-plugins/skier"
	_ "github.com/pautown/llizard-plugins/survivors"
)

var (
	// Global flags
	flagConfig string
	flagPlugin string
	flagSeed   int64
	flagScale  float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "llizardgui",
	Short: "llizardgui - Desktop host for the llizard plugin collection",
	Long: `llizardgui runs the llizard plugin collection in a desktop window.

Without arguments it opens the launcher, a scrollable list of every
registered plugin. Subcommands inspect the collection from the shell.

Examples:
  llizardgui
  llizardgui --plugin survivors
  llizardgui --seed 7 --plugin blocks
  llizardgui list
  llizardgui scores survivors`,
	Run: runHost,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.llizardgui/config.yaml)")
	rootCmd.Flags().StringVar(&flagPlugin, "plugin", "", "Launch straight into the named plugin")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale override (0 = use config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
}

func runHost(cmd *cobra.Command, args []string) {
	cfg := host.LoadConfig(flagConfig)

	// Flags win over the config file.
	if flagPlugin != "" {
		cfg.Plugin = flagPlugin
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagScale > 0 {
		cfg.Scale = flagScale
	}

	if err := host.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
