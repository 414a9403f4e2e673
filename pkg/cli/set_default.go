package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	setDefaultFile string
	setDefaultYes  bool
)

var setDefaultCmd = &cobra.Command{
	Use:   "set-default",
	Short: "Restore the bundled example mocks and settings",
	Long: `Restore the bundled example mocks and settings.

Without --file-name both files are restored. Use -f mocks or -f settings
to restore only one of them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch setDefaultFile {
		case "", "mocks", "settings":
		default:
			return fmt.Errorf(`invalid --file-name %q: must be "settings" or "mocks"`, setDefaultFile)
		}

		out := cmd.OutOrStdout()
		if !setDefaultYes {
			confirmed := false
			err := huh.NewConfirm().
				Title("Restore the default " + describeTarget(setDefaultFile) + "?").
				Description("The installed files will be overwritten.").
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed).
				Run()
			if err != nil && !errors.Is(err, huh.ErrUserAborted) {
				return err
			}
			if !confirmed {
				fmt.Fprintln(out, "Change canceled.")
				return nil
			}
		}

		s := newStore()
		if setDefaultFile != "mocks" {
			if err := s.ResetSettings(); err != nil {
				return err
			}
		}
		if setDefaultFile != "settings" {
			if err := s.ResetCatalog(); err != nil {
				return err
			}
		}

		fmt.Fprintf(out, "Default %s restored.\n", describeTarget(setDefaultFile))
		return nil
	},
}

func describeTarget(file string) string {
	if file == "" {
		return "settings and mocks"
	}
	return file
}

func init() {
	setDefaultCmd.Flags().StringVarP(&setDefaultFile, "file-name", "f", "", `restore only "settings" or "mocks"`)
	setDefaultCmd.Flags().BoolVarP(&setDefaultYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(setDefaultCmd)
}
