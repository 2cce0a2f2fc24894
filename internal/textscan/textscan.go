// Package textscan classifies raw text tokens found in registration
// uploads. All functions are pure and total over their string input.
package textscan

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	timestampRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\d{4}/\d{1,2}/\d{1,2}\s+\d{1,2}:\d{2}:\d{2}\s+(am|pm)\s+GMT[+-]\d+$`),
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}\s+\d{1,2}:\d{2}:\d{2}$`),
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}$`),
		regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`),
	}

	listMarkerRes = []*regexp.Regexp{
		regexp.MustCompile(`^\d+\.\s*$`),
		regexp.MustCompile(`^\*\s*$`),
		regexp.MustCompile(`^-\s*$`),
		regexp.MustCompile(`^•\s*$`),
		regexp.MustCompile(`^>\s*$`),
		regexp.MustCompile(`(?i)^group\s+[a-z]\s*$`),
		regexp.MustCompile(`(?i)^team\s+\d+\s*$`),
		regexp.MustCompile(`(?i)^round\s+\d+\s*$`),
	}

	leadingMarkerRes = []*regexp.Regexp{
		regexp.MustCompile(`^\d+\.\s*`),
		regexp.MustCompile(`^\*\s*`),
		regexp.MustCompile(`^-\s*`),
		regexp.MustCompile(`^•\s*`),
		regexp.MustCompile(`^>\s*`),
	}

	whitespaceRe = regexp.MustCompile(`\s+`)
)

var confirmationWords = map[string]struct{}{
	"yes": {}, "no": {}, "true": {}, "false": {}, "confirmed": {}, "pending": {},
}

// Normalize trims and collapses internal whitespace runs to a single space.
func Normalize(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// IsEmail reports whether s has a local@domain.tld shape. The caller is
// expected to trim surrounding whitespace first.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsTimestamp reports whether s matches one of the known date/time layouts.
// Used only to keep timestamp tokens from being mistaken for names.
func IsTimestamp(s string) bool {
	t := strings.TrimSpace(s)
	for _, re := range timestampRes {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

// IsConfirmation reports whether s is a boolean-style survey answer.
func IsConfirmation(s string) bool {
	_, ok := confirmationWords[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsListMarker reports whether s is purely list decoration with no payload,
// such as "1.", "*", "Group A" or "Round 2".
func IsListMarker(s string) bool {
	t := strings.TrimSpace(s)
	for _, re := range listMarkerRes {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

// RemoveListMarkers strips leading list decoration from a line and trims
// the remainder.
func RemoveListMarkers(s string) string {
	for _, re := range leadingMarkerRes {
		s = re.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}
