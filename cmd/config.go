package cmd

import (
	"fmt"
	"sort"

	"github.com/connorhough/chatkeys/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage chatkeys configuration",
		Long:  `Get and set chatkeys configuration values.`,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get a configuration value",
			Long:  `Get a configuration value by key.`,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := config.GetValue(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Long:  `Set a configuration value by key.`,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configPath()
				if err != nil {
					return err
				}
				if err := prepareConfigFile(path); err != nil {
					return err
				}
				return config.SetValue(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "init [path]",
			Short: "Write a commented config file",
			Long:  `Write the default config template to path, or to the default location. An existing file is left untouched.`,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configPath()
				if err != nil {
					return err
				}
				if len(args) == 1 {
					path = args[0]
				}
				created, err := config.EnsureConfigExists(path)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "import <file.ini>",
			Short: "Import settings from a legacy INI file",
			Long: `Read prefix, token and game from an INI file (DEFAULT section, overridden by a
[bot] section) and store them in the config file.`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				values, err := config.ImportINI(args[0])
				if err != nil {
					return err
				}

				path, err := configPath()
				if err != nil {
					return err
				}
				if err := prepareConfigFile(path); err != nil {
					return err
				}

				keys := make([]string, 0, len(values))
				for k, v := range values {
					viper.Set(k, v)
					keys = append(keys, k)
				}
				if err := viper.WriteConfig(); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}

				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", k)
				}
				return nil
			},
		},
	)

	return configCmd
}

// prepareConfigFile makes sure path exists and is the file viper writes to.
func prepareConfigFile(path string) error {
	if _, err := config.EnsureConfigExists(path); err != nil {
		return err
	}
	viper.SetConfigFile(path)
	return nil
}
