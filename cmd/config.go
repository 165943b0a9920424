// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"docquery/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd groups the commands that inspect and change stored settings.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change stored settings",
	Long: `Settings live in config.yaml under the XDG config directory. Environment
variables DOCQUERY_API_BASE_URL and DOCQUERY_LOG_LEVEL override the file.
The bearer token is never stored.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		p, err := config.Path()
		if err != nil {
			return err
		}
		return printConfig(cmd, p, cfg)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a stored setting",
	Long:  "Change a stored setting. Known keys: " + strings.Join(config.Keys, ", ") + ".",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return err
		}
		// The file alone, so env overrides are not written back.
		cfg, err := config.LoadFile(p)
		if err != nil {
			return err
		}
		if err := config.Set(&cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveFile(p, cfg); err != nil {
			return err
		}
		pterm.Success.Printf("%s updated\n", args[0])
		return nil
	},
}

func printConfig(cmd *cobra.Command, path string, cfg config.Config) error {
	demo := cfg.DemoOrDefault()
	cfg.Demo = &demo
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", path)
	_, err = out.Write(b)
	return err
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
