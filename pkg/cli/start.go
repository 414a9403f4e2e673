package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockapi/pkg/engine"
	"github.com/getmockd/mockapi/pkg/logging"
	"github.com/getmockd/mockapi/pkg/metrics"
	"github.com/getmockd/mockapi/pkg/random"
	"github.com/getmockd/mockapi/pkg/server"
	"github.com/getmockd/mockapi/pkg/store"
)

var (
	startFile string
	startHost string
	startPort string
	startSeed uint64
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mock server",
	Long: `Start the mock server.

Mocks come from --file when given, otherwise from $MOCKS_FILE, the
installed catalog, or the bundled example, in that order. --file may be
a glob such as 'mocks/**/*.json'; matching files are served in lexical
order. Host and port default to the installed settings.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVar(&startFile, "file", "", "catalog file or glob to serve")
	startCmd.Flags().StringVar(&startHost, "host", "", "listen host (overrides settings)")
	startCmd.Flags().StringVar(&startPort, "port", "", "listen port (overrides settings)")
	startCmd.Flags().Uint64Var(&startSeed, "seed", 0, "seed every random draw for reproducible responses")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if startFile != "" {
		path, err := resolveCatalog(startFile)
		if err != nil {
			return err
		}
		if err := os.Setenv(store.EnvMocksFile, path); err != nil {
			return err
		}
	}

	s := newStore()
	settings, err := s.Settings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if startHost != "" {
		settings.Host = startHost
	}
	if startPort != "" {
		settings.Port = startPort
	}

	log, closer, err := logging.Open(logging.Config{
		Level:  logging.ParseLevel(settings.LogLevel),
		Format: logging.ParseFormat(settings.LogFormat),
		Output: os.Stderr,
		File:   settings.LogFile,
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	s.SetLogger(log)

	var src random.Source
	if cmd.Flags().Changed("seed") {
		src = random.NewLocked(startSeed)
		log.Info("random draws are seeded", "seed", startSeed)
	}

	e := engine.New(s, src)
	e.SetLogger(log)

	if addr := settings.MetricsAddr(); addr != "" {
		m := metrics.New()
		e.SetMetrics(m)
		ms := metrics.NewServer(m, addr, log)
		if err := ms.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = ms.Stop(ctx)
		}()
	}

	handler := server.NewHandler(e)
	handler.SetLogger(log)
	srv := server.New(settings.Addr(), handler, server.WithLogger(log))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "Starting server with mocks from %s on http://%s\n", describeCatalog(s), settings.Addr())
	if err := srv.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Server stopped")
	return nil
}

// resolveCatalog makes file absolute. A plain path must name an existing
// file; a glob is checked when the catalog is read.
func resolveCatalog(file string) (string, error) {
	path, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	if store.IsGlob(file) {
		return path, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("mocks file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("mocks file %s is a directory", file)
	}
	return path, nil
}

func describeCatalog(s *store.Store) string {
	if env := os.Getenv(store.EnvMocksFile); env != "" {
		return env
	}
	if _, err := os.Stat(s.Paths().Mocks); err == nil {
		return s.Paths().Mocks
	}
	return "the bundled example"
}
