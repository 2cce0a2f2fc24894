package parser

import "strings"

// ColumnMapping holds zero-based indices of detected semantic columns,
// -1 where no header matched.
type ColumnMapping struct {
	TeamNameIndex int
	EmailIndex    int
	WhatsappIndex int
	UsernameIndex int
}

// Usable reports whether the mapping carries enough signal to read data
// rows by position. A username-only match is not enough.
func (m ColumnMapping) Usable() bool {
	return m.TeamNameIndex >= 0 || m.EmailIndex >= 0 || m.WhatsappIndex >= 0
}

// DetectColumns maps header cells to semantic fields by keyword membership.
// Matching is sequential overwrite: when two headers match the same field,
// the later column wins.
func DetectColumns(headers []string) ColumnMapping {
	m := ColumnMapping{TeamNameIndex: -1, EmailIndex: -1, WhatsappIndex: -1, UsernameIndex: -1}

	for i, header := range headers {
		h := strings.ToLower(strings.TrimSpace(header))

		if strings.Contains(h, "team") && strings.Contains(h, "name") {
			m.TeamNameIndex = i
		} else if h == "team" || h == "name" || h == "team_name" {
			m.TeamNameIndex = i
		}

		if strings.Contains(h, "email") || strings.Contains(h, "mail") {
			m.EmailIndex = i
		}

		if strings.Contains(h, "whatsapp") ||
			strings.Contains(h, "whats app") ||
			strings.Contains(h, "phone") ||
			strings.Contains(h, "mobile") ||
			strings.Contains(h, "contact") ||
			strings.Contains(h, "number") {
			m.WhatsappIndex = i
		}

		if strings.Contains(h, "username") ||
			strings.Contains(h, "user") ||
			strings.Contains(h, "handle") ||
			strings.Contains(h, "id") {
			m.UsernameIndex = i
		}
	}

	return m
}
