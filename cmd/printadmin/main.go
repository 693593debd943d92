package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/printadmin/internal/cli"
	"github.com/example/printadmin/internal/version"
	"github.com/example/printadmin/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "printadmin",
		Short:   "printadmin - admin client for campus print shops",
		Version: version.String(),
		Long: `printadmin manages the campuses and print shops served by the print-shop API.
Changes made through it are recorded in a local audit log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cli.RegisterGlobalFlags(rootCmd)

	// Entity commands
	rootCmd.AddCommand(cli.CampusCmd())
	rootCmd.AddCommand(cli.ShopCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.LogCmd())

	// Setup and diagnostics
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	err := rootCmd.Execute()
	wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
