package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/infomilo/internal/profile"
	"github.com/MKhiriev/infomilo/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func newInfoCommand(c *cli) *cobra.Command {
	var copyURL, remote bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Muestra el perfil activo y las URLs de los endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return interruptible(cmd, func(ctx context.Context) error {
				return c.info(ctx, remote, copyURL)
			})
		},
	}
	cmd.Flags().BoolVar(&copyURL, "copy", false, "Copia la URL base al portapapeles")
	cmd.Flags().BoolVar(&remote, "remote", false, "Lee el perfil desde /api/config del servidor en marcha")

	return cmd
}

func (c *cli) info(ctx context.Context, remote, copyURL bool) error {
	p, base, err := c.infoProfile(ctx, remote)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "Entorno: %s %s\n", p.Icon(), p.Environment)
	if remote {
		fmt.Fprintf(c.stdout, "Origen: %s/api/config\n", base)
	}
	fmt.Fprintf(c.stdout, "URL: %s\n", base)
	fmt.Fprintln(c.stdout, "Endpoints disponibles:")
	fmt.Fprintf(c.stdout, "   Home: %s/\n", base)
	fmt.Fprintf(c.stdout, "   Config: %s/api/config\n", base)
	fmt.Fprintf(c.stdout, "   Status: %s/api/status\n", base)

	if copyURL {
		if err = c.copyText(base); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(c.stdout, "URL copiada al portapapeles")
	}
	return nil
}

// infoProfile returns the profile to describe and the base URL it is served
// at. With remote set, both come from the running server rather than disk.
func (c *cli) infoProfile(ctx context.Context, remote bool) (*models.Profile, string, error) {
	if !remote {
		p, err := profile.NewDefaultLoader(c.cfg.Paths, c.logger("info")).Load()
		if err != nil {
			return nil, "", err
		}
		return p, p.BaseURL(), nil
	}

	client, err := c.statusClient()
	if err != nil {
		return nil, "", err
	}
	p, err := client.Profile(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", client.BaseURL(), err)
	}
	return p, client.BaseURL(), nil
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
