package parser

import (
	"strings"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/textscan"
)

// txtSeparators are tried in order; the first one the line actually
// contains wins. The trailing entry is a double-space run.
var txtSeparators = []string{"\t", ",", ";", "|", "  "}

func parseTXT(content string) []entities.TeamRecord {
	var teams []entities.TeamRecord

	for _, raw := range strings.Split(content, "\n") {
		line := textscan.Normalize(raw)
		if line == "" {
			continue
		}
		if textscan.IsListMarker(line) {
			continue
		}

		cleaned := textscan.RemoveListMarkers(line)
		if cleaned == "" {
			continue
		}

		cols := splitTXTLine(cleaned)
		if len(cols) == 0 {
			continue
		}

		var teamName, email, username string
		if len(cols) == 1 {
			// A lone field is either an email (doubling as username) or a
			// team name.
			if textscan.IsEmail(cols[0]) {
				email = cols[0]
				username = cols[0]
			} else {
				teamName = cols[0]
			}
		} else {
			for _, col := range cols {
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
		}

		if rec, ok := finishRecord(teamName, email, username); ok {
			teams = append(teams, rec)
		}
	}

	return teams
}

func splitTXTLine(line string) []string {
	for _, sep := range txtSeparators {
		if !strings.Contains(line, sep) {
			continue
		}
		var cols []string
		for _, p := range strings.Split(line, sep) {
			if c := textscan.Normalize(p); c != "" {
				cols = append(cols, c)
			}
		}
		return cols
	}
	return []string{line}
}
