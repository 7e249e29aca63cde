package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/infomilo/internal/profile"
	"github.com/MKhiriev/infomilo/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errProfileRequired = errors.New("profile name required")

func newSwitchCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "switch [perfil]",
		Short: "Activa un perfil copiándolo sobre config/active.json",
		Long: "Activa el perfil indicado (por ejemplo home u office). Sin argumento, " +
			"en una terminal se abre un selector interactivo.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.switchProfile(args)
		},
	}
}

func (c *cli) switchProfile(args []string) error {
	log := c.logger("switch")
	paths := c.cfg.Paths

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		available, err := profile.Available(paths)
		if err != nil {
			return err
		}
		if !c.stdinTTY() {
			return fmt.Errorf("%w, available: %s", errProfileRequired, strings.Join(available, ", "))
		}

		name, err = c.pick(available, c.activeEnvironment())
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	p, err := profile.Switch(paths, name)
	if err != nil {
		log.Error().Err(err).Str("profile", name).Msg("error switching profile")
		return loggedError{err}
	}

	fmt.Fprintf(c.stdout, "Configuración cambiada a: %s %s\n", p.Icon(), strings.ToUpper(p.Environment))
	return nil
}

// activeEnvironment names the active profile, or "" when there is none
// or it does not load.
func (c *cli) activeEnvironment() string {
	p, err := profile.NewFileSource(profile.SourceActive, c.cfg.Paths.ActivePath()).Load()
	if err != nil {
		return ""
	}
	return p.Environment
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func pickProfile(names []string, current string) (string, error) {
	return tui.PickProfile(names, current)
}
