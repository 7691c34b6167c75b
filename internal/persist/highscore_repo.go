package persist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// PGStore keeps one high_scores row per run. The high score is the best
// score of any run.
type PGStore struct {
	db    *DB
	runID uuid.UUID
}

func NewPGStore(db *DB, runID uuid.UUID) *PGStore {
	return &PGStore{db: db, runID: runID}
}

func (r *PGStore) Load(ctx context.Context) (int64, error) {
	var best *int64
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT MAX(score) FROM high_scores`,
	).Scan(&best); err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	if best == nil {
		return 0, ErrNoScore
	}
	return *best, nil
}

// Save upserts this run's row. A lower score never overwrites a higher one.
func (r *PGStore) Save(ctx context.Context, score int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO high_scores (run_id, score) VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE
		 SET score = GREATEST(high_scores.score, EXCLUDED.score), saved_at = now()`,
		r.runID, score,
	)
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	r.db.log.Debug("high score row saved")
	return nil
}

// Top returns the best scores across runs, highest first.
func (r *PGStore) Top(ctx context.Context, limit int) ([]RunScore, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT run_id, score FROM high_scores ORDER BY score DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var out []RunScore
	for rows.Next() {
		var rs RunScore
		if err := rows.Scan(&rs.RunID, &rs.Score); err != nil {
			return nil, fmt.Errorf("scan top score: %w", err)
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

func (r *PGStore) Close() error {
	r.db.Close()
	return nil
}

// RunScore is one run's best score.
type RunScore struct {
	RunID uuid.UUID
	Score int64
}
