// Package sanitize cleans untrusted registration text and scans uploaded
// file content before it reaches the roster.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

var stripPolicy = bluemonday.StrictPolicy()

var (
	angleBracketsRe = regexp.MustCompile(`[<>]`)
	jsProtocolRe    = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe  = regexp.MustCompile(`(?i)on\w+=`)
)

// suspiciousRes reject whole files that smell like script payloads rather
// than registration data.
var suspiciousRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)vbscript:`),
	regexp.MustCompile(`(?i)onload=`),
	regexp.MustCompile(`(?i)onerror=`),
	regexp.MustCompile(`(?i)eval\(`),
	regexp.MustCompile(`(?i)document\.`),
	regexp.MustCompile(`(?i)window\.`),
}

// Text strips HTML and script-ish fragments from a single field value.
func Text(s string) string {
	if s == "" {
		return ""
	}

	cleaned := stripPolicy.Sanitize(s)
	cleaned = angleBracketsRe.ReplaceAllString(cleaned, "")
	cleaned = jsProtocolRe.ReplaceAllString(cleaned, "")
	cleaned = eventHandlerRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// Record cleans every text field of a team record.
func Record(t entities.TeamRecord) entities.TeamRecord {
	t.TeamName = Text(t.TeamName)
	t.Email = Text(t.Email)
	t.Username = Text(t.Username)
	return t
}

// ValidateFileContent runs the content safety scan on a whole upload.
func ValidateFileContent(content string, maxSize int64) error {
	if int64(len(content)) > maxSize {
		return fmt.Errorf("%w: content exceeds %d bytes", entities.ErrFileTooLarge, maxSize)
	}
	for _, re := range suspiciousRes {
		if re.MatchString(content) {
			return fmt.Errorf("%w: potentially malicious content", entities.ErrUnsafeContent)
		}
	}
	return nil
}
