package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockapi/pkg/store"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd prints the banner when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "mockapi",
	Short: "mockapi serves HTTP mocks described in a JSON catalog",
	Long: `mockapi serves HTTP mocks described in a JSON or YAML catalog.

Mocks and settings live in the data directory ($MOCKAPI_HOME, or the
user config directory). Both files are re-read on every request.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		printBanner(cmd.OutOrStdout())
		return nil
	},
}

// Main runs the command tree and returns the exit code.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// newStore returns the store over the data directory.
func newStore() *store.Store {
	return store.New(store.DefaultPaths())
}
