// Command chickenmaster runs the chicken-restaurant simulation for a number
// of in-game days with a scripted autoplay policy, persisting state daily.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/catalog"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/config"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/engine"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/persistence"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath := flag.String("config", "config.yaml", "path to config file")
	days := flag.Int("days", 0, "days to simulate (overrides config)")
	seed := flag.Int64("seed", 0, "RNG seed (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *days > 0 {
		cfg.Days = *days
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			slog.Error("failed to load catalog", "error", err)
			os.Exit(1)
		}
		slog.Info("catalog loaded", "path", cfg.Catalog.Path, "version", cat.Version, "cards", len(cat.Cards))
	}

	os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0755)
	db, err := persistence.Open(cfg.Database.SQLitePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.Database.SQLitePath)

	startDate := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	sim := engine.NewSimulation(cfg.Balance, cat, cfg.Seed, startDate)

	clock := sim.Scheduler.Clock()
	slog.Info("opening day",
		"store", sim.Store.Name,
		"money", sim.Player.Money,
		"rivals", len(sim.Rivals),
		"seed", cfg.Seed,
		"clock", fmt.Sprintf("wake %.0f / open %.0f / close %.0f / sleep %.0f",
			clock.Wake, clock.Open, clock.Close, clock.Sleep),
	)

	for day := 0; day < cfg.Days; day++ {
		report, _, err := sim.RunDay(engine.GreedyChooser)
		if err != nil {
			slog.Error("day failed", "day", sim.Scheduler.Turn().Number, "error", err)
			os.Exit(1)
		}

		if err := db.SaveSimulation(sim); err != nil {
			slog.Error("daily save failed", "error", err)
		}
		profile := sim.Analysis.Analyze(sim.Profile)
		if err := db.SaveAnalysis(sim.Player.ID, report.Turn.Number, profile); err != nil {
			slog.Error("analysis save failed", "error", err)
		}
	}

	fmt.Printf("\n%s after %d days: %d won in the till, reputation %.0f, %d rivals still standing.\n",
		sim.Store.Name, cfg.Days, sim.Player.Money, sim.Store.Reputation, len(sim.Rivals))
}
