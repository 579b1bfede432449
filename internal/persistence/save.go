package persistence

import (
	"fmt"
	"log/slog"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/engine"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// SaveSimulation performs a full save of the running simulation.
func (db *DB) SaveSimulation(sim *engine.Simulation) error {
	slog.Info("saving game state", "day", sim.Scheduler.Turn().Number, "rivals", len(sim.Rivals))

	if err := db.SavePlayer(sim.Player); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	if err := db.SaveStore(sim.Store); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	if err := db.SaveProduct(sim.Product); err != nil {
		return fmt.Errorf("save product: %w", err)
	}

	competitors := make([]game.Competitor, 0, len(sim.Rivals))
	for _, r := range sim.Rivals {
		competitors = append(competitors, r.Competitor)
		if err := db.SaveStore(r.Store); err != nil {
			return fmt.Errorf("save rival store: %w", err)
		}
		if err := db.SaveProduct(r.Product); err != nil {
			return fmt.Errorf("save rival product: %w", err)
		}
	}
	if err := db.SaveCompetitors(competitors); err != nil {
		return fmt.Errorf("save competitors: %w", err)
	}
	if err := db.SaveTurn(sim.Scheduler.Turn()); err != nil {
		return fmt.Errorf("save turn: %w", err)
	}

	clock := sim.Scheduler.Clock()
	if err := db.SaveGameState(GameState{
		Segment:       sim.Scheduler.Segment().String(),
		HoursUsed:     sim.Scheduler.HoursUsed(),
		IngredientQty: sim.Store.IngredientQty,
		Freshness:     sim.Store.IngredientFreshness,
		Reputation:    sim.Store.Reputation,
		Clock:         clock,
	}); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}

	return nil
}
