package usecase

import (
	"context"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// RosterUsecaseInterface abstracts roster ingestion and administration.
type RosterUsecaseInterface interface {
	UploadFiles(ctx context.Context, files []entities.UploadFile) (entities.UploadResult, error)
	AddManualTeams(ctx context.Context, teams []entities.TeamRecord) (entities.UploadResult, error)
	Snapshot(ctx context.Context) (*entities.Roster, error)
	ClearData(ctx context.Context) (*entities.Roster, error)
	ExportData(ctx context.Context) ([]byte, error)
}

// GroupingUsecaseInterface abstracts the two tournament grouping contracts.
type GroupingUsecaseInterface interface {
	GroupsByCount(ctx context.Context, groupCount int, algorithm entities.Algorithm) (entities.Grouping, error)
	GroupsBySize(ctx context.Context, teamsPerGroup int) (entities.Grouping, error)
	GroupNameList(ctx context.Context, names []string, teamsPerGroup int) (entities.Grouping, error)
}

// OutputUsecaseInterface abstracts output block generation.
type OutputUsecaseInterface interface {
	OutputBlocks(ctx context.Context, teamsPerGroup int, algorithm entities.Algorithm) (entities.OutputBlocks, int, error)
}

// AnalysisUsecaseInterface abstracts the AI analysis collaborator calls.
type AnalysisUsecaseInterface interface {
	AnalyzeTeamNames(ctx context.Context, names []string, instruction string) (string, error)
	AnalyzeTeamNamesStructured(ctx context.Context, names []string, instruction string) (entities.TeamNameAnalysis, error)
}
