package domain

import (
	"context"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// ClearData replaces the stored roster with an empty document and returns
// the fresh state.
func (u *Usecase) ClearData(ctx context.Context) (*entities.Roster, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	fresh := entities.NewRoster(u.now())
	if err := u.repo.Save(ctx, fresh); err != nil {
		u.log.Errorw("failed to clear roster", "error", err)
		return nil, err
	}

	u.log.Infow("roster cleared")
	return fresh, nil
}

// ExportData returns the raw stored roster document.
func (u *Usecase) ExportData(ctx context.Context) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Export(ctx)
}
