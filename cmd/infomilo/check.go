package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/infomilo/internal/tooling"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("checks failed")

func newCheckCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Comprueba que existen los perfiles necesarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := tooling.RunChecks(tooling.DefaultChecks(c.cfg.Paths))

			if failed := tooling.PrintReport(c.stdout, results); failed > 0 {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, failed, len(results))
			}
			return nil
		},
	}
}
