package domain

import (
	"context"
	"fmt"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// defaultInstruction is used when the caller supplies no prompt of its own.
const defaultInstruction = "Analyze this list of esports team names. Identify common themes, " +
	"name the most creative entries, and provide a brief, fun and insightful summary."

// AnalyzeTeamNames asks the AI collaborator for a free-text take on the
// given names. An empty names slice analyzes the current roster instead.
func (u *Usecase) AnalyzeTeamNames(ctx context.Context, names []string, instruction string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if instruction == "" {
		instruction = defaultInstruction
	}
	names, err := u.analysisNames(ctx, names)
	if err != nil {
		return "", err
	}

	text, err := u.ai.AnalyzeNames(ctx, names, instruction)
	if err != nil {
		u.log.Errorw("analysis request failed", "error", err)
		return "", fmt.Errorf("%w: %v", entities.ErrAnalyzerUnavailable, err)
	}
	return text, nil
}

// AnalyzeTeamNamesStructured is the structured-response variant.
func (u *Usecase) AnalyzeTeamNamesStructured(ctx context.Context, names []string, instruction string) (entities.TeamNameAnalysis, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if instruction == "" {
		instruction = defaultInstruction
	}
	names, err := u.analysisNames(ctx, names)
	if err != nil {
		return entities.TeamNameAnalysis{}, err
	}

	analysis, err := u.ai.AnalyzeNamesStructured(ctx, names, instruction)
	if err != nil {
		u.log.Errorw("structured analysis request failed", "error", err)
		return entities.TeamNameAnalysis{}, fmt.Errorf("%w: %v", entities.ErrAnalyzerUnavailable, err)
	}
	return analysis, nil
}

func (u *Usecase) analysisNames(ctx context.Context, names []string) ([]string, error) {
	if u.ai == nil {
		return nil, entities.ErrAnalyzerUnavailable
	}
	if len(names) > 0 {
		return names, nil
	}

	current, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(current.Teams) == 0 {
		return nil, entities.ErrNoTeams
	}

	names = make([]string, 0, len(current.Teams))
	for _, team := range current.Teams {
		if name := team.DisplayName(); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, entities.ErrNoTeams
	}
	return names, nil
}
