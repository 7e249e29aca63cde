package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/infomilo/internal/adapter"
	"github.com/MKhiriev/infomilo/internal/profile"
	"github.com/MKhiriev/infomilo/models"
	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("server is not running")

func newHealthCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Consulta /api/status de un servidor en marcha",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.statusClient()
			if err != nil {
				return err
			}
			return interruptible(cmd, func(ctx context.Context) error {
				return runHealth(ctx, client, c.stdout)
			})
		},
	}
}

// statusClient targets the configured status URL, or the address of the
// profile the server would load.
func (c *cli) statusClient() (adapter.StatusClient, error) {
	log := c.logger("health")

	var fallback string
	if c.cfg.Adapter.StatusURL == "" {
		p, err := profile.NewDefaultLoader(c.cfg.Paths, log).Load()
		if err != nil {
			return nil, err
		}
		fallback = p.BaseURL()
	}

	return adapter.NewHTTPStatusClient(c.cfg.Adapter, fallback, log)
}

func runHealth(ctx context.Context, client adapter.StatusClient, out io.Writer) error {
	report, err := client.Status(ctx)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", client.BaseURL(), err)
		return err
	}

	fmt.Fprintf(out, "%s: %s (%s, uptime %.0fs)\n", client.BaseURL(), report.Status, report.Environment, report.Uptime)
	if report.Status != models.StatusState {
		return errUnhealthy
	}
	return nil
}
