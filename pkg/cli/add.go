package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add FILE",
	Short: "Install a mock catalog",
	Long: `Install a mock catalog into the data directory.

FILE must hold a JSON (or YAML) array of mock objects. Each object
describes one mock: path, method, status, response and so on. The
installed catalog replaces the previous one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.InstallCatalog(args[0]); err != nil {
			return fmt.Errorf("can't install %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s successfully copied to %s\n", args[0], s.Paths().Mocks)
		return nil
	},
}

var addSettingsCmd = &cobra.Command{
	Use:   "add-settings FILE",
	Short: "Install a settings file",
	Long: `Install a settings file into the data directory.

FILE must hold a JSON (or YAML) object. Recognised keys are host, port,
append_slash, log_level, log_format, log_file and metrics_port.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.InstallSettings(args[0]); err != nil {
			return fmt.Errorf("can't install %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s successfully copied to %s\n", args[0], s.Paths().Settings)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addSettingsCmd)
}
