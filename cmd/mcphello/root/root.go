package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mcphello/internal/config"
	"mcphello/internal/mcp"
	"mcphello/internal/version"
)

var (
	flagServerVersion string
)

// rootCmd serves the protocol on stdin/stdout.
var rootCmd = &cobra.Command{
	Use:           "mcphello",
	Short:         "Line-delimited JSON hello server",
	Long:          "mcphello announces itself on stdout and answers ping and hello requests, one JSON object per line, until stdin closes. Run `mcphello protocol` for the wire format.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		closeLog, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		v := serverVersion(cfg)
		logrus.WithField("version", v).Info("starting MCP hello server")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := mcp.NewServer(v, mcp.WithLogger(logrus.StandardLogger()))
		return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// serverVersion picks the --server-version flag, then MCP_HELLO_VERSION,
// then the build version.
func serverVersion(cfg config.Config) string {
	if flagServerVersion != "" {
		return flagServerVersion
	}
	if cfg.Version != "" {
		return cfg.Version
	}
	return version.Resolve()
}

// setupLogging sends logs to stderr, stdout being reserved for the
// protocol, and optionally duplicates them into LOG_FILE.
func setupLogging(cfg config.Config) (func(), error) {
	logrus.SetLevel(cfg.Level())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)

	if cfg.LogFile == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		logrus.WithError(err).Warn("failed to create directory for LOG_FILE; using stderr only")
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.WithError(err).Warn("failed to open LOG_FILE; using stderr only")
		return func() {}, nil
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, f))
	logrus.WithField("file", cfg.LogFile).Info("logging to file enabled")
	return func() { _ = f.Close() }, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagServerVersion, "server-version", "", "Version announced in the ready event (overrides MCP_HELLO_VERSION)")
}
