// Package grouping partitions a roster snapshot into named tournament
// groups. Two contracts exist side by side: ByCount distributes into a
// fixed number of groups round-robin, BySize chunks a shuffled list into
// groups of a fixed size. They are deliberately not collapsed into one.
package grouping

import (
	"fmt"
	"math/rand"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// maxGroups bounds letter-based group naming at Group Z.
const maxGroups = 26

// ByCount partitions teams into groupCount groups. The balanced and random
// algorithms both shuffle the working copy before distribution; sequential
// keeps roster order. Distribution is round-robin, so group sizes differ by
// at most one. The reported GroupSize is the ceiling target, not a cap.
func ByCount(teams []entities.TeamRecord, groupCount int, algorithm entities.Algorithm, rng *rand.Rand) (entities.Grouping, error) {
	if groupCount < 1 {
		return entities.Grouping{}, fmt.Errorf("%w: group count must be at least 1", entities.ErrInvalidArgument)
	}
	if groupCount > maxGroups {
		return entities.Grouping{}, fmt.Errorf("%w: at most %d groups supported", entities.ErrTooManyGroups, maxGroups)
	}
	if len(teams) == 0 {
		return entities.Grouping{
			Groups:     []entities.Group{},
			TotalTeams: 0,
			GroupSize:  0,
			Algorithm:  algorithm,
		}, nil
	}

	groups := make([]entities.Group, groupCount)
	for i := range groups {
		letter := groupLetter(i)
		groups[i] = entities.Group{
			ID:    "group-" + letter,
			Name:  "Group " + letter,
			Teams: []entities.TeamRecord{},
		}
	}

	working := make([]entities.TeamRecord, len(teams))
	copy(working, teams)
	if algorithm != entities.AlgorithmSequential {
		shuffle(working, rng)
	}

	for i, team := range working {
		g := i % groupCount
		groups[g].Teams = append(groups[g].Teams, team)
	}

	return entities.Grouping{
		Groups:     groups,
		TotalTeams: len(teams),
		GroupSize:  (len(teams) + groupCount - 1) / groupCount,
		Algorithm:  algorithm,
	}, nil
}

// BySize shuffles the team list and cuts it into consecutive chunks of
// teamsPerGroup, the last chunk possibly smaller.
func BySize(teams []entities.TeamRecord, teamsPerGroup int, rng *rand.Rand) ([]entities.Group, error) {
	if teamsPerGroup < 1 {
		return nil, fmt.Errorf("%w: teams per group must be at least 1", entities.ErrInvalidArgument)
	}
	if len(teams) == 0 {
		return []entities.Group{}, nil
	}
	if groupCount := (len(teams) + teamsPerGroup - 1) / teamsPerGroup; groupCount > maxGroups {
		return nil, fmt.Errorf("%w: %d teams at %d per group need %d groups, at most %d supported",
			entities.ErrTooManyGroups, len(teams), teamsPerGroup, groupCount, maxGroups)
	}

	working := make([]entities.TeamRecord, len(teams))
	copy(working, teams)
	shuffle(working, rng)

	var groups []entities.Group
	for start := 0; start < len(working); start += teamsPerGroup {
		end := start + teamsPerGroup
		if end > len(working) {
			end = len(working)
		}
		letter := groupLetter(len(groups))
		groups = append(groups, entities.Group{
			ID:    "group-" + letter,
			Name:  "Group " + letter,
			Teams: working[start:end],
		})
	}

	return groups, nil
}

// GroupCountFor converts a per-group target size into a group count.
func GroupCountFor(totalTeams, teamsPerGroup int) int {
	if teamsPerGroup < 1 {
		return 0
	}
	return (totalTeams + teamsPerGroup - 1) / teamsPerGroup
}

func groupLetter(i int) string {
	return string(rune('A' + i))
}

func shuffle(teams []entities.TeamRecord, rng *rand.Rand) {
	rng.Shuffle(len(teams), func(i, j int) {
		teams[i], teams[j] = teams[j], teams[i]
	})
}
