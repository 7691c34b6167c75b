package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the high score as a single decimal integer in a text file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (int64, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNoScore
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	text := strings.TrimSpace(string(b))
	if text == "" {
		return 0, ErrNoScore
	}
	score, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse high score %q: %w", s.path, err)
	}
	return score, nil
}

// Save replaces the file through a temp file and rename, so a crash never
// leaves a half-written score behind.
func (s *FileStore) Save(_ context.Context, score int64) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.FormatInt(score, 10) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
