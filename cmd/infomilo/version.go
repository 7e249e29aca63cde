package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la información de build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(c.stdout, "Build version: %s\n", c.build.BuildVersion())
			fmt.Fprintf(c.stdout, "Build date: %s\n", c.build.BuildDate())
			fmt.Fprintf(c.stdout, "Build commit: %s\n", c.build.BuildCommit())
			return nil
		},
	}
}
