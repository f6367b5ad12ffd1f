package main

import (
	"os"

	"github.com/spf13/cobra"

	"simvia/internal/interfaces/cli/importer"
	"simvia/internal/interfaces/cli/migrate"
	"simvia/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simvia",
		Short: "Simvia - eSIM storefront backend",
		Long:  `Simvia is an eSIM storefront backend with a catalog importer, a storefront API, and migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		importer.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
