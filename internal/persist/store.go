package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/polywars/arena/internal/config"
	"go.uber.org/zap"
)

// ErrNoScore is returned by Load when nothing has been saved yet.
var ErrNoScore = errors.New("no high score saved")

// Store loads and saves the single high-score value.
type Store interface {
	Load(ctx context.Context) (int64, error)
	Save(ctx context.Context, score int64) error
	Close() error
}

// Open returns the store selected by cfg.Backend. runID tags rows written by
// the postgres backend.
func Open(ctx context.Context, cfg config.HighScoreConfig, runID uuid.UUID, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Backend {
	case "", "none":
		return NopStore{}, nil
	case "file":
		return NewFileStore(cfg.Path), nil
	case "postgres":
		db, err := NewDB(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		version, err := RunMigrations(ctx, db.Pool, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("high score schema ready", zap.Int64("version", version))
		return NewPGStore(db, runID), nil
	default:
		return nil, fmt.Errorf("unknown highscore backend %q", cfg.Backend)
	}
}

// LoadOrZero loads the high score, treating ErrNoScore as zero.
func LoadOrZero(ctx context.Context, s Store) (int64, error) {
	score, err := s.Load(ctx)
	if errors.Is(err, ErrNoScore) {
		return 0, nil
	}
	return score, err
}

// NopStore never persists anything.
type NopStore struct{}

func (NopStore) Load(context.Context) (int64, error) { return 0, ErrNoScore }
func (NopStore) Save(context.Context, int64) error   { return nil }
func (NopStore) Close() error                        { return nil }
