package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the defaults used by every command.

Keys:
  keywords.count      keywords returned when --count is not given (5-30)
  summary.sentences   sentences kept when --sentences is not given (1-10)
  output.format       keyword output: table, json, csv or plain
  output.color        colour headings on terminals (true/false)
  server.addr         listen address for "distil serve"
  server.rate_limit   HTTP requests per second

Settings live in ~/.distil/config.toml. DISTIL_* environment variables
override them, for example DISTIL_KEYWORDS_COUNT=15.`,
	RunE: runSettingsList,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current settings",
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	keys := settingsService.Keys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		value, err := settingsService.Value(key)
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", key, err)
		}
		rows = append(rows, []string{key, value})
	}

	p := newPrinter(cmd, currentSettings())
	p.Heading("Current Settings")
	p.Table([]string{"Key", "Value"}, rows, nil)
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value, err := settingsService.Value(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	value, err := settingsService.Value(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], value)
	return nil
}
