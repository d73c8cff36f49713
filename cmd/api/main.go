package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title           Kalakruti Interiors API
// @version         1.0
// @description     Interior design price calculators, lead capture and catalog.

// @host      localhost:8080
// @BasePath  /

func main() {
	rootCmd := &cobra.Command{
		Use:          "kalakruti-api",
		Short:        "Interior design estimation API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(ensureTablesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply catalog schema and seed migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func ensureTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-tables",
		Short: "Create the DynamoDB estimates and contacts tables if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnsureTables(cmd.Context())
		},
	}
}
