// Package domain contains application Usecases orchestrating roster,
// grouping, output and analysis logic.
package domain

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/al-redowan/freefire-group-maker/config"
	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/repository"

	"go.uber.org/zap"
)

// Analyzer is the narrow contract of the AI analysis collaborator.
type Analyzer interface {
	AnalyzeNames(ctx context.Context, names []string, instruction string) (string, error)
	AnalyzeNamesStructured(ctx context.Context, names []string, instruction string) (entities.TeamNameAnalysis, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	ai      Analyzer
	cfg     *config.Config
	timeout time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
	now   func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	ai Analyzer,
	cfg *config.Config,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		ai:      ai,
		cfg:     cfg,
		timeout: cfg.HTTP.RequestTimeout,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
