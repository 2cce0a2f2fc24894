// Package parser turns raw CSV or TXT uploads into unvalidated team
// records. Malformed individual lines never fail a parse; they are
// skipped. Only whole-file conditions (no usable header columns, zero
// records extracted) are reported.
package parser

import (
	"fmt"
	"strings"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/textscan"
)

// ParseFile dispatches on the filename extension. Unknown extensions fall
// back to the CSV path; the extension allow-list is enforced upstream.
func ParseFile(content, filename string) ([]entities.TeamRecord, error) {
	ext := extensionOf(filename)

	var (
		teams []entities.TeamRecord
		err   error
	)
	if ext == "txt" {
		teams = parseTXT(content)
	} else {
		teams, err = parseCSV(content)
	}
	if err != nil {
		return nil, err
	}

	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrNoRecords, filename)
	}
	return teams, nil
}

func extensionOf(filename string) string {
	parts := strings.Split(strings.ToLower(filename), ".")
	return parts[len(parts)-1]
}

// finishRecord applies the shared emission rules: a record is kept only if
// at least one field is non-empty, and username falls back to email, then
// team name.
func finishRecord(teamName, email, username string) (entities.TeamRecord, bool) {
	if teamName == "" && email == "" && username == "" {
		return entities.TeamRecord{}, false
	}
	if username == "" {
		username = email
	}
	if username == "" {
		username = teamName
	}
	return entities.TeamRecord{TeamName: teamName, Email: email, Username: username}, true
}

// classifyTokens implements positional field detection for rows without a
// usable header mapping: timestamps and confirmations are skipped, the
// first email-shaped token wins the email slot, the first remaining token
// longer than two characters becomes the team name, and the next distinct
// non-email token becomes the username.
func classifyTokens(cols []string) (teamName, email, username string) {
	for _, col := range cols {
		if col == "" {
			continue
		}
		if textscan.IsTimestamp(col) || textscan.IsConfirmation(col) {
			continue
		}

		switch {
		case textscan.IsEmail(col):
			if email == "" {
				email = col
			}
		case runeLen(col) > 2 && teamName == "":
			teamName = col
		case username == "" && col != teamName:
			username = col
		}
	}
	return teamName, email, username
}

func runeLen(s string) int {
	return len([]rune(s))
}
