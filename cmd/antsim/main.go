// Command antsim runs the ant colony simulation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/ant-world/internal/config"
	"github.com/talgya/ant-world/internal/engine"
	"github.com/talgya/ant-world/internal/persistence"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "scenario YAML (empty = built-in defaults)")
		seed     = flag.Int64("seed", 0, "override the scenario seed (0 = keep)")
		maxTicks = flag.Uint64("ticks", 0, "override tick.max_ticks (0 = keep)")
		noDelay  = flag.Bool("fast", false, "run ticks back to back, ignoring tick.interval_ms")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(2)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *maxTicks != 0 {
		cfg.Tick.MaxTicks = *maxTicks
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	slog.Info("ant-world colony simulation", "config", *cfgPath, "colonies", len(cfg.Colonies))

	// ── World ─────────────────────────────────────────────────────────
	sim, err := engine.FromConfig(cfg)
	if err != nil {
		slog.Error("failed to build world", "error", err)
		os.Exit(1)
	}

	// ── Journal ───────────────────────────────────────────────────────
	var db *persistence.DB
	if cfg.Journal.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0o755); err != nil {
			slog.Error("failed to create journal directory", "error", err)
			os.Exit(1)
		}
		db, err = persistence.Open(cfg.Journal.Path)
		if err != nil {
			slog.Error("failed to open journal", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		cfg.Seed = sim.Seed
		if _, err := db.StartRun(sim.Seed, cfg); err != nil {
			slog.Error("failed to start run", "error", err)
			os.Exit(1)
		}
	}

	var archive *persistence.EventArchive
	if cfg.Journal.Archive != "" {
		archive, err = persistence.CreateEventArchive(cfg.Journal.Archive)
		if err != nil {
			slog.Error("failed to create event archive", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := archive.Close(); err != nil {
				slog.Error("close event archive", "error", err)
			}
		}()
	}

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.NewEngine()
	eng.Speed = cfg.Tick.Speed
	eng.Interval = cfg.Interval()
	if *noDelay {
		eng.Interval = 0
	}
	eng.MaxTicks = cfg.Tick.MaxTicks
	eng.TicksPerReport = cfg.Tick.TicksPerReport

	eng.OnTick = func(uint64) { sim.Tick() }
	eng.OnReport = func(tick uint64) {
		sim.Report(tick)
		events := sim.FlushEvents()
		if db != nil {
			if err := db.SaveTick(tick, sim.Stats); err != nil {
				slog.Error("journal tick failed", "tick", tick, "error", err)
			}
			if err := db.SaveEvents(events); err != nil {
				slog.Error("journal events failed", "tick", tick, "error", err)
			}
		}
		if archive != nil {
			if err := archive.Write(events); err != nil {
				slog.Error("archive events failed", "tick", tick, "error", err)
			}
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("\n%d ants foraging among %d obstacles (seed %d).\n",
		sim.Stats.Ants, len(sim.Env.Colliders()), sim.Seed)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	fmt.Printf("Simulation stopped after %s ticks: %s food delivered.\n",
		humanize.Comma(int64(eng.Tick)), humanize.Comma(int64(sim.Stats.FoodDelivered)))
}
