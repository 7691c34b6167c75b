package system

import (
	"context"
	"time"

	coresys "github.com/polywars/arena/internal/core/system"
	"github.com/polywars/arena/internal/world"
	"go.uber.org/zap"
)

// ScoreSystem raises the high score to the running score once per frame.
// Phase 6 (Score).
type ScoreSystem struct {
	world *world.State
}

func NewScoreSystem(ws *world.State) *ScoreSystem {
	return &ScoreSystem{world: ws}
}

func (s *ScoreSystem) Phase() coresys.Phase { return coresys.PhaseScore }

func (s *ScoreSystem) Update(_ time.Duration) {
	s.world.UpdateHighScore()
}

// HighScoreSaver persists the high score.
type HighScoreSaver interface {
	Save(ctx context.Context, score int64) error
}

// PersistenceSystem periodically saves the high score when it has changed
// since the last save. Phase 7 (Persist).
type PersistenceSystem struct {
	world     *world.State
	store     HighScoreSaver
	log       *zap.Logger
	frames    int
	interval  int // save every N frames
	lastSaved int64
}

// NewPersistenceSystem creates the saver. saved is the high score already on
// disk, so an unchanged score is never rewritten.
func NewPersistenceSystem(ws *world.State, store HighScoreSaver, intervalFrames int, saved int64) *PersistenceSystem {
	return &PersistenceSystem{
		world:     ws,
		store:     store,
		log:       ws.Log.Named("persist"),
		interval:  intervalFrames,
		lastSaved: saved,
	}
}

func (s *PersistenceSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *PersistenceSystem) Update(_ time.Duration) {
	if s.interval <= 0 {
		return
	}
	s.frames++
	if s.frames < s.interval {
		return
	}
	s.frames = 0
	s.save()
}

// Save writes the high score immediately if it changed. Called on shutdown.
func (s *PersistenceSystem) Save() error {
	return s.save()
}

func (s *PersistenceSystem) save() error {
	score := s.world.HighScore
	if score == s.lastSaved {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.store.Save(ctx, score); err != nil {
		s.log.Error("save high score failed", zap.Int64("score", score), zap.Error(err))
		return err
	}
	s.lastSaved = score
	s.log.Info("high score saved", zap.Int64("score", score))
	return nil
}
