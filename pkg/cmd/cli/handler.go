package cli

import "github.com/bokol-ooch/temporizadores/config"

// Handler bundles the command line actions that run without the server
type Handler struct {
	Migration *MigrateHandler
}

func NewHandler(c *config.Config) *Handler {
	return &Handler{
		Migration: newMigrateHandler(c),
	}
}
