package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sebastiantruijens/moviefinder/internal/config"
)

var force bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the moviefinder configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}
		cfg := config.DefaultConfig()
		cfg.APIKey = apiKey
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cfg.APIKey != "" {
			cfg.APIKey = "********"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", *cfg)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
