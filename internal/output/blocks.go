// Package output renders a roster, optionally pre-partitioned into
// groups, as the four canonical copy/paste text blocks. Rendering is pure:
// the same roster and grouping always produce the same strings.
package output

import (
	"fmt"
	"strings"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// ungroupedTabularLimit caps the preview table when no grouping is given.
const ungroupedTabularLimit = 12

// GenerateBlocks renders all four blocks. A nil grouping renders the whole
// roster as one implicit Group A.
func GenerateBlocks(data *entities.Roster, grouping *entities.Grouping) entities.OutputBlocks {
	return entities.OutputBlocks{
		TeamsList:      teamsList(data.Teams, grouping),
		EmailsList:     emailsList(data.Teams, grouping),
		TabularMapping: tabularMapping(data.Teams, grouping),
		UsernamesList:  usernamesList(data.Teams, grouping),
	}
}

func groupHeader(name string) string {
	return fmt.Sprintf("☄ %s ☄", strings.ToUpper(name))
}

func groupLabel(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func displayName(t entities.TeamRecord, position int) string {
	if name := t.DisplayName(); name != "" {
		return name
	}
	return fmt.Sprintf("Team %d", position)
}

func teamsList(teams []entities.TeamRecord, grouping *entities.Grouping) string {
	var b strings.Builder
	b.WriteString("Block 1: Team List\n\n")

	if grouping == nil {
		b.WriteString(groupHeader("Group A") + "\n\n")
		for i, team := range teams {
			fmt.Fprintf(&b, "%d. %s\n", i+1, displayName(team, i+1))
		}
		return strings.TrimSpace(b.String())
	}

	for gi, group := range grouping.Groups {
		if gi > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(groupHeader(group.Name) + "\n\n")
		for ti, team := range group.Teams {
			fmt.Fprintf(&b, "%d. %s\n", ti+1, displayName(team, ti+1))
		}
	}
	return strings.TrimSpace(b.String())
}

func emailsList(teams []entities.TeamRecord, grouping *entities.Grouping) string {
	if grouping == nil {
		return fmt.Sprintf("Block 2: Team Emails\n\nTeam Emails:\n%s",
			strings.Join(nonEmptyEmails(teams), ", "))
	}

	var b strings.Builder
	b.WriteString("Block 2: Team Emails\n\n")
	for gi, group := range grouping.Groups {
		if gi > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s Emails:\n%s", groupLabel(group.Name),
			strings.Join(nonEmptyEmails(group.Teams), ", "))
	}
	return strings.TrimSpace(b.String())
}

func tabularMapping(teams []entities.TeamRecord, grouping *entities.Grouping) string {
	var b strings.Builder
	b.WriteString("Block 3: Tabular Mapping\n\n")

	if grouping == nil {
		b.WriteString(groupHeader("Group A") + "\n")
		b.WriteString("Team Name\tEmail\n")
		limited := teams
		if len(limited) > ungroupedTabularLimit {
			limited = limited[:ungroupedTabularLimit]
		}
		for _, team := range limited {
			fmt.Fprintf(&b, "%s\t%s\n", team.TeamName, team.Email)
		}
		return strings.TrimSpace(b.String())
	}

	for gi, group := range grouping.Groups {
		if gi > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(groupHeader(group.Name) + "\n")
		b.WriteString("Team Name\tEmail\n")
		for _, team := range group.Teams {
			fmt.Fprintf(&b, "%s\t%s\n", team.DisplayName(), team.Email)
		}
	}
	return strings.TrimSpace(b.String())
}

func usernamesList(teams []entities.TeamRecord, grouping *entities.Grouping) string {
	if grouping == nil {
		return fmt.Sprintf("Block 4: Team Usernames\n\nTeam Usernames:\n%s",
			strings.Join(nonEmptyUsernames(teams), ", "))
	}

	var b strings.Builder
	b.WriteString("Block 4: Team Usernames\n\n")
	for gi, group := range grouping.Groups {
		if gi > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s Usernames:\n%s", groupLabel(group.Name),
			strings.Join(nonEmptyUsernames(group.Teams), ", "))
	}
	return strings.TrimSpace(b.String())
}

func nonEmptyEmails(teams []entities.TeamRecord) []string {
	var out []string
	for _, t := range teams {
		if strings.TrimSpace(t.Email) != "" {
			out = append(out, t.Email)
		}
	}
	return out
}

func nonEmptyUsernames(teams []entities.TeamRecord) []string {
	var out []string
	for _, t := range teams {
		if strings.TrimSpace(t.Username) != "" {
			out = append(out, t.Username)
		}
	}
	return out
}
