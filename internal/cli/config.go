package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/printadmin/internal/config"
	"github.com/example/printadmin/internal/wire"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage printadmin configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a config file with default settings to ~/.printadmin/config.yaml,
or to the path given by --config.

Examples:
  printadmin config init --api-url https://print.example.edu --actor registrar`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := config.Defaults()
		if cmd.Flags().Changed("api-url") {
			cfg.API.URL, _ = cmd.Flags().GetString("api-url")
		}
		cfg.Actor = actorFlag
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := wire.Config()
		fmt.Printf("api.url:        %s\n", cfg.API.URL)
		fmt.Printf("api.timeout:    %s\n", cfg.API.Timeout)
		fmt.Printf("log.level:      %s\n", cfg.Log.Level)
		fmt.Printf("log.format:     %s\n", cfg.Log.Format)
		fmt.Printf("store.max_age:  %s\n", cfg.Store.MaxAge)
		fmt.Printf("actor:          %s\n", GetActorID())
		return nil
	},
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	configInitCmd.Flags().String("api-url", config.DefaultAPIURL, "Print-shop API base URL")
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	return configCmd
}
