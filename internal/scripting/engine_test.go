package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/polywars/arena/internal/scripting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, path string) *scripting.Engine {
	t.Helper()
	e, err := scripting.NewEngine(path, nil)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestSpawnIntervalWithoutHook(t *testing.T) {
	e := newEngine(t, "")
	assert.False(t, e.HasFunc("spawn_interval"))
	assert.Equal(t, 60, e.SpawnInterval(10, 99999, 60))
}

func TestDifficultyScript(t *testing.T) {
	e := newEngine(t, filepath.Join("..", "..", "scripts", "difficulty.lua"))
	require.True(t, e.HasFunc("spawn_interval"))

	tests := []struct {
		score int64
		base  int
		want  int
	}{
		{0, 60, 60},
		{4999, 60, 60},
		{5000, 60, 55},
		{25000, 60, 35},
		{1000000, 60, 15},
		{0, 10, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.SpawnInterval(0, tt.score, tt.base), "score=%d base=%d", tt.score, tt.base)
	}
}

func TestSpawnIntervalFallbacks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"runtime error", `function spawn_interval() error("boom") end`, 60},
		{"non-number", `function spawn_interval() return "soon" end`, 60},
		{"nil result", `function spawn_interval() end`, 60},
		{"negative", `function spawn_interval() return -5 end`, 0},
		{"uses frame", `function spawn_interval(frame) return frame % 7 end`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, "")
			require.NoError(t, e.DoString(tt.src))
			assert.Equal(t, tt.want, e.SpawnInterval(10, 0, 60))
		})
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lua"), []byte(`BASE_BONUS = 5`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.lua"),
		[]byte(`function spawn_interval(f, s, base) return base + BASE_BONUS end`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`not lua`), 0o644))

	e := newEngine(t, dir)
	assert.Equal(t, 65, e.SpawnInterval(0, 0, 60))
}

func TestLoadErrors(t *testing.T) {
	_, err := scripting.NewEngine(filepath.Join(t.TempDir(), "missing.lua"), nil)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.lua")
	require.NoError(t, os.WriteFile(bad, []byte(`function (`), 0o644))
	_, err = scripting.NewEngine(bad, nil)
	assert.ErrorContains(t, err, "bad.lua")
}
