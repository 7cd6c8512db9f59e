package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/config"
)

// configCmd groups the config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted defaults",
	Long: `Manage the vexil config file.

Config values fill in flags you do not pass on the command line, so
'vexil config set preset nonbinary' makes every later paint use that
preset by default.

Valid keys: preset, layer, space_only, brightness`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one config value, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the config to the built-in defaults",
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	if len(args) == 1 {
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	}

	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(""); err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Default().Save(""); err != nil {
		return err
	}
	fmt.Println("Config reset to defaults")
	return nil
}
