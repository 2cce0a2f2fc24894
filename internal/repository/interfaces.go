// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// RosterInterface exposes roster document operations. The document is read
// fully on each load and rewritten fully on each save; Save must publish
// atomically so a concurrent reader never sees a partial roster.
type RosterInterface interface {
	Load(ctx context.Context) (*entities.Roster, error)
	Save(ctx context.Context, r *entities.Roster) error
	Export(ctx context.Context) ([]byte, error)
}
