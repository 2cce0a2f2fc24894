// Package roster implements the identity-based merge of registration
// batches into the persisted roster.
package roster

import (
	"strings"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// Merge folds a batch of records from one named source into the roster and
// returns the updated copy. Records are matched against existing entries by
// identity key in strict priority order: email, then username, then team
// name, all case-insensitive. On a match the existing entry is updated in
// place, non-empty incoming fields winning per field and provenance
// (SourceFile) always preserved. Unmatched records are appended and become
// match targets for the rest of the same batch, so duplicates within one
// upload collapse too.
func Merge(existing *entities.Roster, batch []entities.TeamRecord, sourceFile string) *entities.Roster {
	teams := make([]entities.TeamRecord, len(existing.Teams))
	copy(teams, existing.Teams)

	emailIdx := make(map[string]int)
	usernameIdx := make(map[string]int)
	teamNameIdx := make(map[string]int)
	for i, t := range teams {
		if t.Email != "" {
			emailIdx[strings.ToLower(t.Email)] = i
		}
		if t.Username != "" {
			usernameIdx[strings.ToLower(t.Username)] = i
		}
		if t.TeamName != "" {
			teamNameIdx[strings.ToLower(t.TeamName)] = i
		}
	}

	files := make([]string, len(existing.UploadedFiles))
	copy(files, existing.UploadedFiles)
	if !containsString(files, sourceFile) {
		files = append(files, sourceFile)
	}

	for _, incoming := range batch {
		match := -1
		if incoming.Email != "" {
			if i, ok := emailIdx[strings.ToLower(incoming.Email)]; ok {
				match = i
			}
		}
		if match < 0 && incoming.Username != "" {
			if i, ok := usernameIdx[strings.ToLower(incoming.Username)]; ok {
				match = i
			}
		}
		if match < 0 && incoming.TeamName != "" {
			if i, ok := teamNameIdx[strings.ToLower(incoming.TeamName)]; ok {
				match = i
			}
		}

		if match >= 0 {
			old := teams[match]
			teams[match] = entities.TeamRecord{
				TeamName:   firstNonEmpty(incoming.TeamName, old.TeamName),
				Email:      firstNonEmpty(incoming.Email, old.Email),
				Username:   firstNonEmpty(incoming.Username, old.Username),
				SourceFile: old.SourceFile,
			}
			continue
		}

		added := incoming
		added.SourceFile = sourceFile
		teams = append(teams, added)

		i := len(teams) - 1
		if added.Email != "" {
			emailIdx[strings.ToLower(added.Email)] = i
		}
		if added.Username != "" {
			usernameIdx[strings.ToLower(added.Username)] = i
		}
		if added.TeamName != "" {
			teamNameIdx[strings.ToLower(added.TeamName)] = i
		}
	}

	return &entities.Roster{
		Teams:         teams,
		CreatedAt:     existing.CreatedAt,
		UploadedFiles: files,
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
