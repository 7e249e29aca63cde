package main

import (
	"context"

	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/internal/handler"
	"github.com/MKhiriev/infomilo/internal/profile"
	"github.com/MKhiriev/infomilo/internal/server"
	"github.com/MKhiriev/infomilo/internal/service"
	"github.com/spf13/cobra"
)

func newServeCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Carga la configuración activa y arranca el servidor HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return interruptible(cmd, c.serve)
		},
	}
}

// serve blocks until ctx is cancelled. Any error before the listener is
// serving is returned and ends the process with status 1.
func (c *cli) serve(ctx context.Context) error {
	log := c.serverLog("infomilo").WithMinLevel(c.cfg.Log.Level)

	p, err := profile.NewDefaultLoader(c.cfg.Paths, log).Load()
	if err != nil {
		log.Error().Err(err).Msg(app.MsgConfigLoadFailed)
		return loggedError{err}
	}

	if p.Development.DebugMode {
		log = log.WithMinLevel("debug")
	}
	log.Debug().Any("settings", c.cfg).Msg("received settings")

	appCtx := app.NewContext(p,
		app.WithStartedAt(c.startedAt),
		app.WithBuildInfo(c.build),
	)

	services, err := service.NewServices(appCtx, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return loggedError{err}
	}

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return loggedError{err}
	}

	srv, err := server.NewServer(handlers, p, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return loggedError{err}
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server run error")
		return loggedError{err}
	}
	return nil
}
