// Package jsonfile implements the repository against a single JSON
// document on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/al-redowan/freefire-group-maker/config"
	"github.com/al-redowan/freefire-group-maker/internal/entities"
)

// Store keeps the whole roster in one file, rewritten on every mutation.
// Writes are serialized behind a mutex and published via temp-file rename,
// so readers never observe a partially written document.
type Store struct {
	log *zap.SugaredLogger
	cfg config.StorageConfig
	mu  sync.Mutex
	now func() time.Time
}

// New creates a jsonfile repository instance.
func New(log *zap.SugaredLogger, cfg config.StorageConfig) *Store {
	return &Store{
		log: log.Named("repo.jsonfile"),
		cfg: cfg,
		now: time.Now,
	}
}

// OnStart ensures the data directory exists.
func (s *Store) OnStart(_ context.Context) error {
	if err := os.MkdirAll(s.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	s.log.Infow("jsonfile ready", "path", s.cfg.DataPath())
	return nil
}

// OnStop is a no-op; every save is already durable on return.
func (s *Store) OnStop(_ context.Context) error {
	return nil
}

// Load reads the full roster document. A missing file yields a fresh empty
// roster; any other failure is surfaced.
func (s *Store) Load(_ context.Context) (*entities.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.cfg.DataPath())
	if err != nil {
		if os.IsNotExist(err) {
			return entities.NewRoster(s.now()), nil
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var r entities.Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if r.Teams == nil {
		r.Teams = []entities.TeamRecord{}
	}
	if r.UploadedFiles == nil {
		r.UploadedFiles = []string{}
	}
	return &r, nil
}

// Save rewrites the whole document atomically (write temp, then rename).
func (s *Store) Save(_ context.Context, r *entities.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}

	path := s.cfg.DataPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write roster temp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("publish roster: %w", err)
	}
	return nil
}

// Export returns the raw persisted document bytes for the admin download.
func (s *Store) Export(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.cfg.DataPath())
	if err != nil {
		if os.IsNotExist(err) {
			out, merr := json.MarshalIndent(entities.NewRoster(s.now()), "", "  ")
			if merr != nil {
				return nil, fmt.Errorf("encode empty roster: %w", merr)
			}
			return out, nil
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return data, nil
}
