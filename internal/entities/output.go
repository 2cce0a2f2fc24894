// Package entities contains core business entities.
package entities

// OutputBlocks holds the four copy/paste-ready renderings of a roster.
type OutputBlocks struct {
	TeamsList      string `json:"teamsList"`
	EmailsList     string `json:"emailsList"`
	TabularMapping string `json:"tabularMapping"`
	UsernamesList  string `json:"usernamesList"`
}

// TeamNameAnalysis is the structured shape returned by the AI collaborator.
// The service treats its content as opaque display data.
type TeamNameAnalysis struct {
	CommonThemes      []string `json:"commonThemes"`
	MostCreativeNames []string `json:"mostCreativeNames"`
	AnalysisSummary   string   `json:"analysisSummary"`
}
