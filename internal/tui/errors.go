package tui

import "errors"

var (
	ErrUserQuit   = errors.New("selección cancelada")
	ErrNoProfiles = errors.New("no hay perfiles disponibles")
)
