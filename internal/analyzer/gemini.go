// Package analyzer wraps the Gemini API behind the narrow interface the
// usecase layer consumes. The roster never depends on its results.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/al-redowan/freefire-group-maker/config"
	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// Gemini produces free-text and structured thematic analyses of team names.
type Gemini struct {
	client *genai.Client
	model  string
	log    *zap.SugaredLogger
}

// NewGemini creates the Gemini client. A missing API key is a
// configuration error; callers are expected to run without the analyzer in
// that case.
func NewGemini(ctx context.Context, log *zap.SugaredLogger, cfg config.GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  cfg.Model,
		log:    log.Named("analyzer.gemini"),
	}, nil
}

func buildPrompt(names []string, instruction string) string {
	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nHere is the list of team names to analyze:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	b.WriteString("\nPlease provide the analysis.")
	return b.String()
}

// AnalyzeNames returns an unstructured analysis blob.
func (g *Gemini) AnalyzeNames(ctx context.Context, names []string, instruction string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(names, instruction)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

// AnalyzeNamesStructured asks for the fixed JSON shape the UI renders.
func (g *Gemini) AnalyzeNamesStructured(ctx context.Context, names []string, instruction string) (entities.TeamNameAnalysis, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"commonThemes":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"mostCreativeNames": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"analysisSummary":   {Type: genai.TypeString},
			},
			Required: []string{"commonThemes", "mostCreativeNames", "analysisSummary"},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(names, instruction)), cfg)
	if err != nil {
		return entities.TeamNameAnalysis{}, fmt.Errorf("gemini generate: %w", err)
	}

	var analysis entities.TeamNameAnalysis
	if err := json.Unmarshal([]byte(resp.Text()), &analysis); err != nil {
		g.log.Warnw("malformed analysis response", "error", err)
		return entities.TeamNameAnalysis{}, fmt.Errorf("decode analysis response: %w", err)
	}
	return analysis, nil
}
