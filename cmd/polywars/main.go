package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/polywars/arena/internal/config"
	"github.com/polywars/arena/internal/core/event"
	"github.com/polywars/arena/internal/game"
	"github.com/polywars/arena/internal/persist"
	"github.com/polywars/arena/internal/scripting"
	"github.com/polywars/arena/internal/system"
	"github.com/polywars/arena/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func printBanner(runID uuid.UUID) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              polywars  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Printf("  \033[1mrun:\033[0m %s\n\n", runID)
}

func printSection(title string) {
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", max(3, 45-len(title))))
}

func printStat(label string, value any) {
	s := fmt.Sprint(value)
	dots := max(3, 42-len(label)-len(s))
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dots), s)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func run() error {
	cfgPath := flag.String("config", "config/polywars.toml", "config file (.toml or .yaml)")
	frames := flag.Int("frames", 0, "stop after this many frames (0 = run until interrupted)")
	profMode := flag.String("profile", "", "write a profile: cpu, mem or trace")
	flag.Parse()

	if p := os.Getenv("POLYWARS_CONFIG"); p != "" {
		*cfgPath = p
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if stop, err := startProfile(*profMode); err != nil {
		return err
	} else if stop != nil {
		defer stop()
	}

	runID := uuid.New()
	log = log.With(zap.String("run", runID.String()))
	printBanner(runID)

	printSection("high score")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := persist.Open(ctx, cfg.HighScore, runID, log.Named("persist"))
	if err != nil {
		return fmt.Errorf("high score store: %w", err)
	}
	defer store.Close()

	high, err := persist.LoadOrZero(ctx, store)
	if err != nil {
		return fmt.Errorf("load high score: %w", err)
	}
	printStat("backend", cfg.HighScore.Backend)
	printStat("high score", high)
	fmt.Println()

	printSection("scripts")
	lua, err := scripting.NewEngine(cfg.Script.Path, log.Named("lua"))
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer lua.Close()

	var interval system.IntervalFunc
	if lua.HasFunc("spawn_interval") {
		interval = lua.SpawnInterval
		printOK("spawn_interval hook loaded")
	} else {
		printOK("no difficulty hook, fixed spawn interval")
	}
	fmt.Println()

	ws := world.NewState(cfg, event.NewBus(), log)
	g := game.New(ws, game.Options{
		Interval:  interval,
		Store:     store,
		HighScore: high,
	})
	pilot := game.Autopilot{FireEvery: 10, DodgeRange: 3 * cfg.Enemy.CollisionRadius}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	pauseCh := make(chan os.Signal, 1)
	signal.Notify(pauseCh, syscall.SIGUSR1)

	ticker := time.NewTicker(cfg.Simulation.TickRate)
	defer ticker.Stop()

	log.Info("simulation started",
		zap.Duration("tick", cfg.Simulation.TickRate),
		zap.Int("frames", *frames),
	)

loop:
	for {
		select {
		case <-ticker.C:
			pilot.Drive(g)
			g.Step()
			if *frames > 0 && ws.Frame >= *frames {
				break loop
			}
		case <-pauseCh:
			g.Post(func(g *game.Game) { g.TogglePause() })
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			break loop
		}
	}

	if err := g.SaveHighScore(); err != nil {
		log.Error("final high score save failed", zap.Error(err))
	}

	c := g.Counters()
	log.Info("simulation stopped",
		zap.Int("frame", ws.Frame),
		zap.Int64("score", ws.Score),
		zap.Int64("high_score", ws.HighScore),
		zap.Int("spawned", c.Spawned),
		zap.Int("kills", c.Kills),
		zap.Int("fragment_kills", c.FragmentKills),
		zap.Int("player_hits", c.PlayerHits),
	)
	for _, s := range g.Stats() {
		log.Debug("system stats",
			zap.String("system", s.Name),
			zap.Stringer("phase", s.Phase),
			zap.Int64("runs", s.Runs),
			zap.Int64("skipped", s.Skipped),
			zap.Duration("avg", s.Avg()),
			zap.Duration("max", s.Max),
		)
	}
	return nil
}

// startProfile starts pkg/profile in the requested mode. The returned func
// stops it; nil means profiling is off.
func startProfile(mode string) (func(), error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	case "trace":
		opt = profile.TraceProfile
	default:
		return nil, errors.New("profile must be cpu, mem or trace")
	}
	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	return p.Stop, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
