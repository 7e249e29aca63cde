package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/infomilo/internal/tooling"
	"github.com/spf13/cobra"
)

func newBuildCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Copia los perfiles a dist/ y escribe build-info.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := tooling.Build(c.cfg.Paths, c.build, time.Now(), c.logger("build"))
			if err != nil {
				return err
			}

			for _, f := range manifest.Files {
				fmt.Fprintf(c.stdout, "Copiado: %s\n", f)
			}
			for _, f := range manifest.Missing {
				fmt.Fprintf(c.stdout, "Archivo no encontrado: %s\n", f)
			}
			fmt.Fprintf(c.stdout, "Archivos listos en %s\n", c.cfg.Paths.DistPath())
			return nil
		},
	}
}
