package parser

import (
	"regexp"
	"strings"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/textscan"
)

var csvSeparators = []string{",", ";", "\t", "|"}

// multiSpaceRe splits on runs of 2+ spaces or a tab while keeping single
// spaces inside names intact.
var multiSpaceRe = regexp.MustCompile(`\s{2,}|\t`)

// timestampPrefixRe carves a leading form-export timestamp blob off a line
// that resisted every separator.
var timestampPrefixRe = regexp.MustCompile(`(?i)^(.*?\d{4}/\d{1,2}/\d{1,2}\s+\d{1,2}:\d{2}:\d{2}\s+(?:am|pm)\s+GMT[+-]\d+)(.*)`)

func parseCSV(content string) ([]entities.TeamRecord, error) {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	firstLower := strings.ToLower(lines[0])
	hasHeader := strings.Contains(firstLower, "team") ||
		strings.Contains(firstLower, "email") ||
		strings.Contains(firstLower, "whatsapp") ||
		strings.Contains(firstLower, "name")

	mapping := ColumnMapping{TeamNameIndex: -1, EmailIndex: -1, WhatsappIndex: -1, UsernameIndex: -1}
	dataLines := lines
	if hasHeader {
		mapping = DetectColumns(splitBestSeparator(lines[0]))
		if !mapping.Usable() {
			return nil, entities.ErrMissingColumns
		}
		dataLines = lines[1:]
	}

	var teams []entities.TeamRecord
	for _, line := range dataLines {
		cols := splitCSVLine(line)
		if len(cols) == 0 {
			continue
		}

		var teamName, email, username string
		if hasHeader {
			teamName, email, username = readMappedColumns(cols, mapping)
		} else {
			teamName, email, username = classifyTokens(cols)
		}

		if teamName == "" && email != "" {
			teamName = strings.SplitN(email, "@", 2)[0]
		}

		if rec, ok := finishRecord(teamName, email, username); ok {
			teams = append(teams, rec)
		}
	}

	return teams, nil
}

// splitCSVLine tries the multi-separator heuristic first, then a 2+ space
// or tab split, then the timestamp-prefix extraction.
func splitCSVLine(line string) []string {
	cols := splitBestSeparator(line)
	if len(cols) > 1 {
		return cols
	}

	parts := multiSpaceRe.Split(line, -1)
	if len(parts) > 1 {
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, textscan.Normalize(p))
		}
		return out
	}

	if m := timestampPrefixRe.FindStringSubmatch(line); m != nil {
		cols = []string{m[1]}
		cols = append(cols, strings.Fields(strings.TrimSpace(m[2]))...)
		return cols
	}

	return cols
}

// splitBestSeparator splits on whichever candidate separator produces the
// most columns, stripping one layer of surrounding quotes per cell.
func splitBestSeparator(line string) []string {
	var best []string
	for _, sep := range csvSeparators {
		parts := strings.Split(line, sep)
		if len(parts) > len(best) {
			cells := make([]string, 0, len(parts))
			for _, p := range parts {
				cells = append(cells, textscan.Normalize(stripQuotes(p)))
			}
			best = cells
		}
	}
	return best
}

func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}

// readMappedColumns reads fields by detected header position. The contact
// column is preferred as the username; a separate username column fills the
// slot only when the contact cell is empty.
func readMappedColumns(cols []string, m ColumnMapping) (teamName, email, username string) {
	cell := func(i int) string {
		if i >= 0 && i < len(cols) {
			return cols[i]
		}
		return ""
	}

	teamName = cell(m.TeamNameIndex)
	email = cell(m.EmailIndex)
	username = cell(m.WhatsappIndex)
	if username == "" {
		username = cell(m.UsernameIndex)
	}
	return teamName, email, username
}
