// Package dto defines the JSON request and response bodies of the HTTP API.
package dto

// Team is the wire form of a single roster record.
type Team struct {
	TeamName   string `json:"teamName"`
	Email      string `json:"email,omitempty"`
	Username   string `json:"username,omitempty"`
	SourceFile string `json:"sourceFile,omitempty"`
}

// ParsedFile reports the outcome of ingesting one file.
type ParsedFile struct {
	Filename          string `json:"filename"`
	Teams             []Team `json:"teams"`
	RowCount          int    `json:"rowCount"`
	DuplicatesRemoved int    `json:"duplicatesRemoved"`
}

// UploadResponse is returned by upload and manual-teams endpoints.
type UploadResponse struct {
	Success           bool         `json:"success"`
	Message           string       `json:"message"`
	ParsedData        []ParsedFile `json:"parsedData"`
	NewRecords        int          `json:"newRecords"`
	DuplicatesRemoved int          `json:"duplicatesRemoved"`
	TotalTeams        int          `json:"totalTeams"`
}

// ManualTeamsRequest carries manually entered teams.
type ManualTeamsRequest struct {
	Teams []Team `json:"teams"`
}

// TeamsResponse is the roster snapshot.
type TeamsResponse struct {
	Teams         []Team   `json:"teams"`
	TotalTeams    int      `json:"totalTeams"`
	UploadedFiles []string `json:"uploadedFiles"`
	CreatedAt     string   `json:"createdAt"`
}

// GroupsRequest configures a grouping run. Names, when present, replace
// the stored roster as the team source.
type GroupsRequest struct {
	Names         []string `json:"names,omitempty"`
	GroupCount    int      `json:"groupCount,omitempty"`
	TeamsPerGroup int      `json:"teamsPerGroup,omitempty"`
	Algorithm     string   `json:"algorithm,omitempty"`
}

// Group is one named tournament group.
type Group struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Teams []Team `json:"teams"`
}

// GroupsResponse is the grouping result.
type GroupsResponse struct {
	Groups     []Group `json:"groups"`
	TotalTeams int     `json:"totalTeams"`
	GroupSize  int     `json:"groupSize"`
	Algorithm  string  `json:"algorithm"`
}

// OutputBlocksResponse carries the four canonical output blocks.
type OutputBlocksResponse struct {
	Blocks     Blocks `json:"blocks"`
	TotalTeams int    `json:"totalTeams"`
}

// Blocks holds the rendered block texts.
type Blocks struct {
	TeamsList      string `json:"teamsList"`
	EmailsList     string `json:"emailsList"`
	TabularMapping string `json:"tabularMapping"`
	UsernamesList  string `json:"usernamesList"`
}

// AnalysisRequest configures an AI team-name analysis run.
type AnalysisRequest struct {
	Names       []string `json:"names,omitempty"`
	Instruction string   `json:"instruction,omitempty"`
	Structured  bool     `json:"structured,omitempty"`
}

// AnalysisResponse is the free-text analysis result.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// StructuredAnalysisResponse is the schema-constrained analysis result.
type StructuredAnalysisResponse struct {
	CommonThemes      []string `json:"commonThemes"`
	MostCreativeNames []string `json:"mostCreativeNames"`
	AnalysisSummary   string   `json:"analysisSummary"`
}

// TokenRequest carries admin credentials.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse returns an ephemeral admin token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// ClearResponse confirms a roster reset.
type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RateLimitedResponse is the 429 body with the wait hint in seconds.
type RateLimitedResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}
