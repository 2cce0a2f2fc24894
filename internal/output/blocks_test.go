package output

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

func rosterWith(teams ...entities.TeamRecord) *entities.Roster {
	r := entities.NewRoster(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	r.Teams = teams
	return r
}

func TestGenerateBlocksUngrouped(t *testing.T) {
	data := rosterWith(
		entities.TeamRecord{TeamName: "Alpha", Email: "a@x.com", Username: "alpha"},
		entities.TeamRecord{Email: "b@x.com", Username: "b@x.com"},
		entities.TeamRecord{Username: "ghost"},
	)

	blocks := GenerateBlocks(data, nil)

	require.True(t, strings.HasPrefix(blocks.TeamsList, "Block 1: Team List\n\n☄ GROUP A ☄\n\n"))
	require.Contains(t, blocks.TeamsList, "1. Alpha\n")
	require.Contains(t, blocks.TeamsList, "2. b@x.com\n")
	require.Contains(t, blocks.TeamsList, "3. ghost")

	require.Equal(t, "Block 2: Team Emails\n\nTeam Emails:\na@x.com, b@x.com", blocks.EmailsList)
	require.Equal(t, "Block 4: Team Usernames\n\nTeam Usernames:\nalpha, b@x.com, ghost", blocks.UsernamesList)

	// Ungrouped tabular rows use the raw team name, not the display fallback.
	require.Contains(t, blocks.TabularMapping, "Team Name\tEmail\n")
	require.Contains(t, blocks.TabularMapping, "Alpha\ta@x.com\n")
	require.Contains(t, blocks.TabularMapping, "\tb@x.com")
}

func TestGenerateBlocksNamelessTeamsGetPlaceholders(t *testing.T) {
	data := rosterWith(entities.TeamRecord{}, entities.TeamRecord{})

	blocks := GenerateBlocks(data, nil)
	require.Contains(t, blocks.TeamsList, "1. Team 1\n")
	require.Contains(t, blocks.TeamsList, "2. Team 2")
}

func TestGenerateBlocksUngroupedTabularCap(t *testing.T) {
	teams := make([]entities.TeamRecord, 0, 15)
	for i := 0; i < 15; i++ {
		teams = append(teams, entities.TeamRecord{TeamName: fmt.Sprintf("Team-%02d", i)})
	}

	blocks := GenerateBlocks(rosterWith(teams...), nil)
	require.Contains(t, blocks.TabularMapping, "Team-11")
	require.NotContains(t, blocks.TabularMapping, "Team-12")
}

func TestGenerateBlocksGrouped(t *testing.T) {
	data := rosterWith(
		entities.TeamRecord{TeamName: "Alpha", Email: "a@x.com", Username: "alpha"},
		entities.TeamRecord{TeamName: "Beta", Email: "b@x.com", Username: "beta"},
	)
	grouping := &entities.Grouping{
		Groups: []entities.Group{
			{ID: "group-a", Name: "Group A", Teams: data.Teams[:1]},
			{ID: "group-b", Name: "Group B", Teams: data.Teams[1:]},
		},
		TotalTeams: 2,
		GroupSize:  1,
		Algorithm:  entities.AlgorithmBalanced,
	}

	blocks := GenerateBlocks(data, grouping)

	require.Contains(t, blocks.TeamsList, "☄ GROUP A ☄\n\n1. Alpha")
	require.Contains(t, blocks.TeamsList, "☄ GROUP B ☄\n\n1. Beta")
	require.Contains(t, blocks.EmailsList, "group-a Emails:\na@x.com")
	require.Contains(t, blocks.EmailsList, "group-b Emails:\nb@x.com")
	require.Contains(t, blocks.UsernamesList, "group-a Usernames:\nalpha")
	require.Contains(t, blocks.TabularMapping, "☄ GROUP B ☄\nTeam Name\tEmail\nBeta\tb@x.com")
}

func TestFormatBlocksText(t *testing.T) {
	blocks := entities.OutputBlocks{
		TeamsList:      "one",
		EmailsList:     "two",
		TabularMapping: "three",
		UsernamesList:  "four",
	}
	text := FormatBlocksText(blocks)
	require.Equal(t, "```\none\n```\n\n```\ntwo\n```\n\n```\nthree\n```\n\n```\nfour\n```", text)
}

func TestFormatGroupsText(t *testing.T) {
	g := entities.Grouping{
		Groups: []entities.Group{
			{ID: "group-a", Name: "Group A", Teams: []entities.TeamRecord{{TeamName: "Alpha"}}},
		},
		TotalTeams: 1,
		GroupSize:  1,
		Algorithm:  entities.AlgorithmSequential,
	}

	text := FormatGroupsText(g)
	require.True(t, strings.HasPrefix(text, "Tournament Groups (sequential distribution)\nTotal Teams: 1\nGroups: 1\n\n"))
	require.Contains(t, text, "☄ GROUP A ☄\n1. Alpha")
}
