// Package entities contains core business entities.
package entities

// TeamRecord is a single registered team as extracted from an upload or
// manual input. All fields are free text; Email and Username may be empty.
type TeamRecord struct {
	TeamName   string `json:"team_name"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	SourceFile string `json:"source_file"`
}

// DisplayName returns the best available label for the team.
func (t TeamRecord) DisplayName() string {
	switch {
	case t.TeamName != "":
		return t.TeamName
	case t.Email != "":
		return t.Email
	default:
		return t.Username
	}
}

// UploadFile is one uploaded file as received by the intake boundary.
type UploadFile struct {
	Name    string
	Content string
}

// ParsedFile summarizes one ingested batch for upload responses.
type ParsedFile struct {
	Teams             []TeamRecord `json:"teams"`
	Filename          string       `json:"filename"`
	RowCount          int          `json:"rowCount"`
	DuplicatesRemoved int          `json:"duplicatesRemoved"`
}

// UploadResult aggregates counts across a batch of ingested files.
type UploadResult struct {
	Files             []ParsedFile `json:"files"`
	NewRecords        int          `json:"newRecords"`
	DuplicatesRemoved int          `json:"duplicatesRemoved"`
	TotalTeams        int          `json:"totalTeams"`
}
