// Package main is the entry point for scrimhub-cli, the operator tool for schema
// migrations, policy seeding, staff accounts and billing catalog entries.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/scrimhub/cmd/scrimhub-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "scrimhub-cli",
		Short: "Operator CLI for scrimhub",
		Long: `scrimhub-cli runs administrative tasks against the configured database.

The configuration file is taken from --config, then CONFIG_PATH, then
configs/rest-app.yaml. SCRIMHUB_* environment variables override file values.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML configuration file")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAccountCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize account commands: %w", err)
	}

	if err := commands.InitBillingCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize billing commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
