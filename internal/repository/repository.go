// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/al-redowan/freefire-group-maker/config"
	"github.com/al-redowan/freefire-group-maker/internal/repository/jsonfile"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	RosterInterface
}

// New constructs repository backend by name.
func New(_ context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "jsonfile":
		return jsonfile.New(log, cfg.Storage), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
