package main

import (
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:          "schema",
	Short:        "Create the transactions table if it does not exist",
	RunE:         schemaCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}

func schemaCmdF(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.ledger.EnsureSchema(cmd.Context()); err != nil {
		return err
	}

	cmd.Println("Schema ready")
	return nil
}
