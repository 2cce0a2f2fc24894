package grouping

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

func fakeTeams(t *testing.T, n int) []entities.TeamRecord {
	t.Helper()
	faker := gofakeit.New(42)
	teams := make([]entities.TeamRecord, 0, n)
	for i := 0; i < n; i++ {
		// Index suffix keeps the generated names unique.
		teams = append(teams, entities.TeamRecord{
			TeamName: fmt.Sprintf("%s-%d", faker.Gamertag(), i),
			Email:    faker.Email(),
			Username: faker.Username(),
		})
	}
	return teams
}

func collectNames(groups []entities.Group) map[string]int {
	seen := make(map[string]int)
	for _, g := range groups {
		for _, team := range g.Teams {
			seen[team.TeamName]++
		}
	}
	return seen
}

func TestByCountExhaustiveAndDisjoint(t *testing.T) {
	teams := fakeTeams(t, 17)
	rng := rand.New(rand.NewSource(1))

	g, err := ByCount(teams, 5, entities.AlgorithmBalanced, rng)
	require.NoError(t, err)
	require.Len(t, g.Groups, 5)
	require.Equal(t, 17, g.TotalTeams)
	require.Equal(t, 4, g.GroupSize)

	seen := collectNames(g.Groups)
	require.Len(t, seen, 17)
	for name, count := range seen {
		require.Equal(t, 1, count, name)
	}
}

func TestByCountSkewAtMostOne(t *testing.T) {
	teams := fakeTeams(t, 23)
	rng := rand.New(rand.NewSource(2))

	g, err := ByCount(teams, 4, entities.AlgorithmRandom, rng)
	require.NoError(t, err)

	min, max := len(teams), 0
	for _, grp := range g.Groups {
		if len(grp.Teams) < min {
			min = len(grp.Teams)
		}
		if len(grp.Teams) > max {
			max = len(grp.Teams)
		}
	}
	require.LessOrEqual(t, max-min, 1)
}

func TestByCountSequentialIsDeterministic(t *testing.T) {
	teams := []entities.TeamRecord{
		{TeamName: "T1"}, {TeamName: "T2"}, {TeamName: "T3"}, {TeamName: "T4"},
	}
	rng := rand.New(rand.NewSource(3))

	g, err := ByCount(teams, 2, entities.AlgorithmSequential, rng)
	require.NoError(t, err)

	require.Equal(t, "Group A", g.Groups[0].Name)
	require.Equal(t, "group-a", g.Groups[0].ID)
	require.Equal(t, []string{"T1", "T3"}, names(g.Groups[0].Teams))
	require.Equal(t, []string{"T2", "T4"}, names(g.Groups[1].Teams))
}

func TestByCountEmptyRoster(t *testing.T) {
	g, err := ByCount(nil, 4, entities.AlgorithmBalanced, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	require.Empty(t, g.Groups)
	require.Equal(t, 0, g.TotalTeams)
	require.Equal(t, 0, g.GroupSize)
}

func TestByCountRejectsBadCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	_, err := ByCount(fakeTeams(t, 3), 0, entities.AlgorithmBalanced, rng)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = ByCount(fakeTeams(t, 3), 27, entities.AlgorithmBalanced, rng)
	require.ErrorIs(t, err, entities.ErrTooManyGroups)
}

func TestBySizeChunks(t *testing.T) {
	teams := fakeTeams(t, 10)
	rng := rand.New(rand.NewSource(6))

	groups, err := BySize(teams, 4, rng)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Len(t, groups[0].Teams, 4)
	require.Len(t, groups[1].Teams, 4)
	require.Len(t, groups[2].Teams, 2)

	seen := collectNames(groups)
	require.Len(t, seen, 10)
}

func TestBySizeRejectsTooManyGroups(t *testing.T) {
	teams := fakeTeams(t, 30)
	_, err := BySize(teams, 1, rand.New(rand.NewSource(7)))
	require.ErrorIs(t, err, entities.ErrTooManyGroups)
}

func TestBySizeEmpty(t *testing.T) {
	groups, err := BySize(nil, 4, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestGroupCountFor(t *testing.T) {
	require.Equal(t, 3, GroupCountFor(10, 4))
	require.Equal(t, 1, GroupCountFor(3, 4))
	require.Equal(t, 0, GroupCountFor(10, 0))
}

func names(teams []entities.TeamRecord) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.TeamName)
	}
	return out
}
