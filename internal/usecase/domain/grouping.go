package domain

import (
	"context"
	"fmt"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/grouping"
)

// GroupsByCount partitions the current roster into a fixed number of
// groups via round-robin distribution.
func (u *Usecase) GroupsByCount(ctx context.Context, groupCount int, algorithm entities.Algorithm) (entities.Grouping, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	current, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Grouping{}, err
	}

	u.rngMu.Lock()
	defer u.rngMu.Unlock()
	return grouping.ByCount(current.Teams, groupCount, algorithm, u.rng)
}

// GroupsBySize shuffles the current roster and cuts it into groups of the
// given size, the last group possibly smaller.
func (u *Usecase) GroupsBySize(ctx context.Context, teamsPerGroup int) (entities.Grouping, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	current, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Grouping{}, err
	}

	return u.chunkTeams(current.Teams, teamsPerGroup)
}

// GroupNameList applies the size-based grouping to a plain name list used
// as a substitute source instead of the roster.
func (u *Usecase) GroupNameList(_ context.Context, names []string, teamsPerGroup int) (entities.Grouping, error) {
	if len(names) == 0 {
		return entities.Grouping{}, fmt.Errorf("%w: no names provided", entities.ErrInvalidArgument)
	}

	teams := make([]entities.TeamRecord, 0, len(names))
	for _, name := range names {
		teams = append(teams, entities.TeamRecord{TeamName: name, Username: name})
	}
	return u.chunkTeams(teams, teamsPerGroup)
}

func (u *Usecase) chunkTeams(teams []entities.TeamRecord, teamsPerGroup int) (entities.Grouping, error) {
	u.rngMu.Lock()
	defer u.rngMu.Unlock()

	groups, err := grouping.BySize(teams, teamsPerGroup, u.rng)
	if err != nil {
		return entities.Grouping{}, err
	}
	return entities.Grouping{
		Groups:     groups,
		TotalTeams: len(teams),
		GroupSize:  teamsPerGroup,
		Algorithm:  entities.AlgorithmRandom,
	}, nil
}
