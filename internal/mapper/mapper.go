// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
)

// FromDTOTeam builds an entities.TeamRecord from transport DTO.
func FromDTOTeam(src dto.Team) entities.TeamRecord {
	return entities.TeamRecord{
		TeamName: src.TeamName,
		Email:    src.Email,
		Username: src.Username,
	}
}

// FromDTOTeams maps a slice of transport teams to records.
func FromDTOTeams(src []dto.Team) []entities.TeamRecord {
	teams := make([]entities.TeamRecord, 0, len(src))
	for _, t := range src {
		teams = append(teams, FromDTOTeam(t))
	}
	return teams
}

// ToDTOTeam maps entities.TeamRecord to transport model.
func ToDTOTeam(t entities.TeamRecord) dto.Team {
	return dto.Team{
		TeamName:   t.TeamName,
		Email:      t.Email,
		Username:   t.Username,
		SourceFile: t.SourceFile,
	}
}

// ToDTOTeams maps a slice of records to transport teams.
func ToDTOTeams(teams []entities.TeamRecord) []dto.Team {
	res := make([]dto.Team, 0, len(teams))
	for _, t := range teams {
		res = append(res, ToDTOTeam(t))
	}
	return res
}

// ToDTOUploadResponse maps an ingestion result to the upload response body.
func ToDTOUploadResponse(src entities.UploadResult, msg string) dto.UploadResponse {
	files := make([]dto.ParsedFile, 0, len(src.Files))
	for _, f := range src.Files {
		files = append(files, dto.ParsedFile{
			Filename:          f.Filename,
			Teams:             ToDTOTeams(f.Teams),
			RowCount:          f.RowCount,
			DuplicatesRemoved: f.DuplicatesRemoved,
		})
	}

	return dto.UploadResponse{
		Success:           true,
		Message:           msg,
		ParsedData:        files,
		NewRecords:        src.NewRecords,
		DuplicatesRemoved: src.DuplicatesRemoved,
		TotalTeams:        src.TotalTeams,
	}
}

// ToDTOTeamsResponse maps a roster snapshot to transport model.
func ToDTOTeamsResponse(r *entities.Roster) dto.TeamsResponse {
	files := r.UploadedFiles
	if files == nil {
		files = []string{}
	}
	return dto.TeamsResponse{
		Teams:         ToDTOTeams(r.Teams),
		TotalTeams:    len(r.Teams),
		UploadedFiles: files,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToDTOGroupsResponse maps a grouping result to transport model.
func ToDTOGroupsResponse(g entities.Grouping) dto.GroupsResponse {
	groups := make([]dto.Group, 0, len(g.Groups))
	for _, grp := range g.Groups {
		groups = append(groups, dto.Group{
			ID:    grp.ID,
			Name:  grp.Name,
			Teams: ToDTOTeams(grp.Teams),
		})
	}

	return dto.GroupsResponse{
		Groups:     groups,
		TotalTeams: g.TotalTeams,
		GroupSize:  g.GroupSize,
		Algorithm:  string(g.Algorithm),
	}
}

// ToDTOBlocks maps the output blocks to transport model.
func ToDTOBlocks(b entities.OutputBlocks) dto.Blocks {
	return dto.Blocks{
		TeamsList:      b.TeamsList,
		EmailsList:     b.EmailsList,
		TabularMapping: b.TabularMapping,
		UsernamesList:  b.UsernamesList,
	}
}

// ToDTOStructuredAnalysis maps the schema-constrained analysis result.
func ToDTOStructuredAnalysis(a entities.TeamNameAnalysis) dto.StructuredAnalysisResponse {
	return dto.StructuredAnalysisResponse{
		CommonThemes:      a.CommonThemes,
		MostCreativeNames: a.MostCreativeNames,
		AnalysisSummary:   a.AnalysisSummary,
	}
}
