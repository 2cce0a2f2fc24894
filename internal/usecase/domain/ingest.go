package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/parser"
	"github.com/al-redowan/freefire-group-maker/internal/roster"
	"github.com/al-redowan/freefire-group-maker/internal/sanitize"
)

// manualSourceLabel is the provenance recorded for manual-entry batches.
const manualSourceLabel = "Manual Input"

var allowedExtensions = map[string]struct{}{"csv": {}, "txt": {}}

// UploadFiles validates, parses and merges a batch of uploaded files into
// the roster. Validation failures on any file reject the whole batch; the
// merged roster is only persisted after every file succeeded.
func (u *Usecase) UploadFiles(ctx context.Context, files []entities.UploadFile) (entities.UploadResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if len(files) == 0 {
		return entities.UploadResult{}, fmt.Errorf("%w: no files uploaded", entities.ErrInvalidArgument)
	}

	for _, f := range files {
		ext := extensionOf(f.Name)
		if _, ok := allowedExtensions[ext]; !ok {
			return entities.UploadResult{}, fmt.Errorf("%w: file %s has type %q, must be CSV or TXT",
				entities.ErrUnsupportedFile, f.Name, ext)
		}
		if int64(len(f.Content)) > u.cfg.Upload.MaxFileSize {
			return entities.UploadResult{}, fmt.Errorf("%w: file %s exceeds %d bytes",
				entities.ErrFileTooLarge, f.Name, u.cfg.Upload.MaxFileSize)
		}
	}

	current, err := u.repo.Load(ctx)
	if err != nil {
		u.log.Errorw("failed to load roster", "error", err)
		return entities.UploadResult{}, err
	}

	var result entities.UploadResult
	for _, f := range files {
		if err := sanitize.ValidateFileContent(f.Content, u.cfg.Upload.MaxFileSize); err != nil {
			return entities.UploadResult{}, fmt.Errorf("file %s: %w", f.Name, err)
		}

		parsed, err := parser.ParseFile(f.Content, f.Name)
		if err != nil {
			return entities.UploadResult{}, err
		}

		cleaned := make([]entities.TeamRecord, 0, len(parsed))
		for _, rec := range parsed {
			cleaned = append(cleaned, sanitize.Record(rec))
		}

		before := len(current.Teams)
		current = roster.Merge(current, cleaned, f.Name)
		duplicates := before + len(cleaned) - len(current.Teams)

		result.Files = append(result.Files, entities.ParsedFile{
			Teams:             cleaned,
			Filename:          f.Name,
			RowCount:          len(cleaned),
			DuplicatesRemoved: duplicates,
		})
		result.NewRecords += len(cleaned)
		result.DuplicatesRemoved += duplicates
	}

	if err := u.repo.Save(ctx, current); err != nil {
		u.log.Errorw("failed to persist roster", "error", err)
		return entities.UploadResult{}, err
	}

	result.TotalTeams = len(current.Teams)
	u.log.Infow("upload merged",
		"files", len(files),
		"new_records", result.NewRecords,
		"duplicates_removed", result.DuplicatesRemoved,
		"total_teams", result.TotalTeams,
	)
	return result, nil
}

// AddManualTeams merges already-sanitized manual entries under the
// "Manual Input" source label, exactly like a parsed file.
func (u *Usecase) AddManualTeams(ctx context.Context, teams []entities.TeamRecord) (entities.UploadResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if len(teams) == 0 {
		return entities.UploadResult{}, fmt.Errorf("%w: no teams provided", entities.ErrInvalidArgument)
	}

	cleaned := make([]entities.TeamRecord, 0, len(teams))
	for _, rec := range teams {
		cleaned = append(cleaned, sanitize.Record(rec))
	}

	current, err := u.repo.Load(ctx)
	if err != nil {
		u.log.Errorw("failed to load roster", "error", err)
		return entities.UploadResult{}, err
	}

	before := len(current.Teams)
	updated := roster.Merge(current, cleaned, manualSourceLabel)
	duplicates := before + len(cleaned) - len(updated.Teams)

	if err := u.repo.Save(ctx, updated); err != nil {
		u.log.Errorw("failed to persist roster", "error", err)
		return entities.UploadResult{}, err
	}

	return entities.UploadResult{
		Files: []entities.ParsedFile{{
			Teams:             cleaned,
			Filename:          manualSourceLabel,
			RowCount:          len(cleaned),
			DuplicatesRemoved: duplicates,
		}},
		NewRecords:        len(cleaned),
		DuplicatesRemoved: duplicates,
		TotalTeams:        len(updated.Teams),
	}, nil
}

// Snapshot returns the current roster document.
func (u *Usecase) Snapshot(ctx context.Context) (*entities.Roster, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Load(ctx)
}

func extensionOf(filename string) string {
	parts := strings.Split(strings.ToLower(filename), ".")
	return parts[len(parts)-1]
}
