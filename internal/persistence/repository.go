package persistence

import (
	"github.com/google/uuid"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/rival"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/schedule"
)

// GameState is the free-form per-save row tracking where the day stands.
type GameState struct {
	Segment       string              `json:"segment"`
	HoursUsed     float64             `json:"hours_used"`
	IngredientQty int                 `json:"ingredient_qty"`
	Freshness     float64             `json:"freshness"`
	Reputation    float64             `json:"reputation"`
	Clock         schedule.ClockMarks `json:"clock"`
}

// GameStatePatch updates a subset of the game state row. Nil fields are left
// untouched.
type GameStatePatch struct {
	Segment       *string
	HoursUsed     *float64
	IngredientQty *int
	Freshness     *float64
	Reputation    *float64
	Clock         *schedule.ClockMarks
}

// Repository is the storage port the core depends on. The core never sees a
// concrete store; anything satisfying this interface works, including the
// SQLite implementation in this package and test fakes.
type Repository interface {
	SavePlayer(p game.Player) error
	LoadPlayer(id uuid.UUID) (game.Player, error)

	SaveStore(s game.Store) error
	LoadStore(id uuid.UUID) (game.Store, error)

	SaveProduct(p game.Product) error
	LoadProduct(id uuid.UUID) (game.Product, error)

	SaveCompetitors(cs []game.Competitor) error
	LoadCompetitors() ([]game.Competitor, error)

	SaveTurn(t game.Turn) error
	LoadTurn() (game.Turn, error)

	// Analysis blobs are keyed by player id; history queries are bounded.
	SaveAnalysis(playerID uuid.UUID, turn int, profile rival.BehaviorProfile) error
	RecentAnalyses(playerID uuid.UUID, limit int) ([]rival.BehaviorProfile, error)

	GameState() (GameState, error)
	PatchGameState(patch GameStatePatch) error

	Close() error
}
