package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	startedAt := time.Now()

	c := &cli{
		build:     models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		startedAt: startedAt,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newLogger: logger.NewConsoleLogger,
		serverLog: logger.NewLogger,
		stdinTTY:  stdinIsTerminal,
		copyText:  copyToClipboard,
		pick:      pickProfile,
	}

	if err := newRootCommand(c).Execute(); err != nil {
		if !errors.As(err, new(loggedError)) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
