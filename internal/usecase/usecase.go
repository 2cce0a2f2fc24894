package usecase

import (
	"context"

	"github.com/al-redowan/freefire-group-maker/config"
	"github.com/al-redowan/freefire-group-maker/internal/repository"
	"github.com/al-redowan/freefire-group-maker/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RosterUsecaseInterface
	GroupingUsecaseInterface
	OutputUsecaseInterface
	AnalysisUsecaseInterface
}

// New constructs a new usecase layer with its dependencies. The analyzer
// may be nil when the AI collaborator is not configured.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, ai domain.Analyzer, cfg *config.Config) InterfaceUsecase {
	return domain.New(log, ctx, repo, ai, cfg)
}
