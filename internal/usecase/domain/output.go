package domain

import (
	"context"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/grouping"
	"github.com/al-redowan/freefire-group-maker/internal/output"
)

// OutputBlocks renders the four canonical output blocks for the current
// roster. A teamsPerGroup below 1 produces the ungrouped rendering.
func (u *Usecase) OutputBlocks(ctx context.Context, teamsPerGroup int, algorithm entities.Algorithm) (entities.OutputBlocks, int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	current, err := u.repo.Load(ctx)
	if err != nil {
		return entities.OutputBlocks{}, 0, err
	}

	if teamsPerGroup < 1 || len(current.Teams) == 0 {
		return output.GenerateBlocks(current, nil), len(current.Teams), nil
	}

	groupCount := grouping.GroupCountFor(len(current.Teams), teamsPerGroup)

	u.rngMu.Lock()
	grouped, err := grouping.ByCount(current.Teams, groupCount, algorithm, u.rng)
	u.rngMu.Unlock()
	if err != nil {
		return entities.OutputBlocks{}, 0, err
	}

	return output.GenerateBlocks(current, &grouped), len(current.Teams), nil
}
