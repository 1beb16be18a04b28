package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envName string

// RootCmd runs the HTTP server unless a subcommand is given
var RootCmd = &cobra.Command{
	Use:          "api",
	Short:        "Cheque ledger service",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&envName, "env", "e", "", "Environment to load (development, production, test); defaults to LEDGER_ENV")
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
