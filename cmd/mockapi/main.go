// mockapi serves HTTP mocks described in a JSON or YAML catalog.
package main

import (
	"os"

	"github.com/getmockd/mockapi/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	os.Exit(cli.Main())
}
