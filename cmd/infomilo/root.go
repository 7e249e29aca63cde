package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/MKhiriev/infomilo/internal/config"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/models"
	"github.com/spf13/cobra"
)

// cli carries what the subcommands share. Process-level collaborators
// (terminal detection, clipboard, picker) are fields so tests can replace
// them.
type cli struct {
	build     models.AppBuildInfo
	startedAt time.Time

	stdout io.Writer
	stderr io.Writer

	newLogger func(role string) *logger.Logger
	serverLog func(role string) *logger.Logger

	stdinTTY func() bool
	copyText func(string) error
	pick     func(names []string, current string) (string, error)

	cfg *config.StructuredConfig
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "infomilo",
		Short:         "InfoMilo: servidor de configuración para trabajo remoto",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetStructuredConfig(cmd.Flags())
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return interruptible(cmd, c.serve)
		},
	}

	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCommand(c),
		newSwitchCommand(c),
		newBuildCommand(c),
		newCheckCommand(c),
		newHealthCommand(c),
		newInfoCommand(c),
		newVersionCommand(c),
	)

	return root
}

// logger returns the console logger for role at the configured level.
func (c *cli) logger(role string) *logger.Logger {
	return c.newLogger(role).WithMinLevel(c.cfg.Log.Level)
}

// interruptible runs fn with a context cancelled by SIGINT. Only commands
// that block on a network peer install the handler; one-shot file commands
// keep the default Ctrl-C behaviour. Other signals are never caught.
func interruptible(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return fn(ctx)
}

// loggedError marks an error the command has already reported through its
// logger, so main does not print it a second time.
type loggedError struct {
	err error
}

func (e loggedError) Error() string {
	return e.err.Error()
}

func (e loggedError) Unwrap() error {
	return e.err
}
