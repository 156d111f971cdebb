// Package cli implements the command-line interface for the cube engine.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	statePath  string
	sessionID  string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "N×N×N cube engine",
	Long: `cube - a sticker-level Rubik's Cube engine for any dimension.

Create cubes, turn any layer with comma-separated notation (R, 2U3, 12F2),
scramble, revert through history, run the first-layer daisy step and serve
the state and render geometry over HTTP.

Cubes are stored in SQLite; the last created or imported cube is the
active one for commands that take no --session.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.cube_engine/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cube_engine/cube.db)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "State file path (default: ~/.cube_engine/state.json)")
	rootCmd.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "Session ID (default: the active session)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
