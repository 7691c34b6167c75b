package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/polywars/arena/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := config.Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 6.18, cfg.Simulation.HeadingMax)
	assert.Equal(t, 60, cfg.Enemy.SpawnInterval)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "game.toml", `
[window]
width = 800
height = 600

[enemy]
speed_min = 2
speed_max = 6
vertices_min = 4
vertices_max = 6
spawn_interval = 30

[bullet]
fill = [10, 20, 30]

[simulation]
seed = 42
tick_rate = "20ms"

[logging]
level = "debug"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Window.Width)
	assert.Equal(t, 600.0, cfg.Window.Height)
	assert.Equal(t, 2.0, cfg.Enemy.SpeedMin)
	assert.Equal(t, 6.0, cfg.Enemy.SpeedMax)
	assert.Equal(t, 30, cfg.Enemy.SpawnInterval)
	assert.Equal(t, config.RGB{10, 20, 30}, cfg.Bullet.Fill)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, 20*time.Millisecond, cfg.Simulation.TickRate)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, config.Defaults().Player, cfg.Player)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "game.yaml", `
window:
  width: 1024
  height: 768
player:
  collision_radius: 20
  outline: [1, 2, 3]
highscore:
  backend: none
simulation:
  tick_rate: 10ms
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.Window.Width)
	assert.Equal(t, 20.0, cfg.Player.CollisionRadius)
	assert.Equal(t, config.RGB{1, 2, 3}, cfg.Player.Outline)
	assert.Equal(t, "none", cfg.HighScore.Backend)
	assert.Equal(t, 10*time.Millisecond, cfg.Simulation.TickRate)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "game.ini", "x=1"))
		assert.ErrorIs(t, err, config.ErrUnknownFormat)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "game.toml", "[window\nwidth = "))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "game.toml", "[enemy]\nspeed_min = 9\nspeed_max = 1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "speed_min")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero window", func(c *config.Config) { c.Window.Width = 0 }, "window size"},
		{"negative player radius", func(c *config.Config) { c.Player.CollisionRadius = -1 }, "player collision_radius"},
		{"inverted vertices", func(c *config.Config) { c.Enemy.VerticesMin, c.Enemy.VerticesMax = 8, 3 }, "vertices range"},
		{"enemy too big", func(c *config.Config) { c.Enemy.ShapeRadius = 400 }, "does not fit"},
		{"bad backend", func(c *config.Config) { c.HighScore.Backend = "redis" }, "backend"},
		{"no bullet lifespan", func(c *config.Config) { c.Bullet.Lifespan = 0 }, "bullet lifespan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "config", "polywars.toml"))
	require.NoError(t, err)
	assert.Equal(t, 16*time.Millisecond, cfg.Simulation.TickRate)
	assert.Equal(t, "file", cfg.HighScore.Backend)
}
