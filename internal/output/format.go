package output

import (
	"fmt"
	"strings"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// FormatBlocksText concatenates the four blocks as fenced plain text for
// the text download.
func FormatBlocksText(blocks entities.OutputBlocks) string {
	sections := []string{
		blocks.TeamsList,
		blocks.EmailsList,
		blocks.TabularMapping,
		blocks.UsernamesList,
	}
	fenced := make([]string, 0, len(sections))
	for _, s := range sections {
		fenced = append(fenced, fmt.Sprintf("```\n%s\n```", s))
	}
	return strings.Join(fenced, "\n\n")
}

// FormatGroupsText renders a grouping as the plain-text summary listing.
func FormatGroupsText(g entities.Grouping) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tournament Groups (%s distribution)\n", g.Algorithm)
	fmt.Fprintf(&b, "Total Teams: %d\n", g.TotalTeams)
	fmt.Fprintf(&b, "Groups: %d\n\n", len(g.Groups))

	for _, group := range g.Groups {
		letter := group.Name
		if parts := strings.SplitN(group.Name, " ", 2); len(parts) == 2 {
			letter = parts[1]
		}
		fmt.Fprintf(&b, "☄ GROUP %s ☄\n", letter)
		for i, team := range group.Teams {
			fmt.Fprintf(&b, "%d. %s\n", i+1, team.DisplayName())
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
