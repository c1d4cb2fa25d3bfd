// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/secureedit/internal/config"
)

// writeConfigFile is swapped by tests so nothing lands in the real config dir.
var writeConfigFile = config.WriteConfigFile[config.Config]

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the SecureEdit configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to secureedit.yaml",
		Long: `Writes the effective settings (defaults, existing file, environment and
flags) to secureedit.yaml in the user config directory, or in the system
config directory with --system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := c.EditOptions(); err != nil {
				return err
			}
			system, _ := cmd.Flags().GetBool("system")
			if err := writeConfigFile(&c, system); err != nil {
				return fmt.Errorf("could not write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config written")
			return nil
		},
	}
	initCmd.Flags().Bool("system", false, "write the system-wide config instead of the user config")

	cmd.AddCommand(initCmd)
	return cmd
}
