// Package persistence provides SQLite-based save-game storage behind the
// Repository port.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/rival"
)

// DB wraps a SQLite connection implementing Repository.
type DB struct {
	conn *sqlx.DB
}

var _ Repository = (*DB)(nil)

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		fatigue INTEGER NOT NULL,
		happiness REAL NOT NULL,
		money INTEGER NOT NULL,
		store_id TEXT NOT NULL,
		research INTEGER NOT NULL,
		stats_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stores (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		rent INTEGER NOT NULL,
		product_id TEXT NOT NULL,
		reputation REAL NOT NULL,
		ingredient_qty INTEGER NOT NULL,
		ingredient_freshness REAL NOT NULL,
		prepared_qty INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price INTEGER NOT NULL,
		quality REAL NOT NULL,
		awareness REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS competitors (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		money INTEGER NOT NULL,
		strategy TEXT NOT NULL,
		store_ids_json TEXT NOT NULL,
		bankrupt_since TEXT
	);

	CREATE TABLE IF NOT EXISTS turns (
		key TEXT PRIMARY KEY,
		number INTEGER NOT NULL,
		date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		profile_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS game_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		segment TEXT NOT NULL,
		hours_used REAL NOT NULL,
		ingredient_qty INTEGER NOT NULL,
		freshness REAL NOT NULL,
		reputation REAL NOT NULL,
		clock_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_player ON analyses(player_id, turn);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// notFound translates a sql miss into the core's error taxonomy.
func notFound(err error, kind, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &game.EntityNotFoundError{Kind: kind, ID: id}
	}
	return err
}

// SavePlayer upserts a player row.
func (db *DB) SavePlayer(p game.Player) error {
	statsJSON, _ := json.Marshal(p.Stats)
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO players
		(id, name, fatigue, happiness, money, store_id, research, stats_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.Name, p.Fatigue, p.Happiness, p.Money,
		p.StoreID.String(), p.Research, string(statsJSON),
	)
	return err
}

// LoadPlayer reads a player by id.
func (db *DB) LoadPlayer(id uuid.UUID) (game.Player, error) {
	var row struct {
		ID        string  `db:"id"`
		Name      string  `db:"name"`
		Fatigue   int     `db:"fatigue"`
		Happiness float64 `db:"happiness"`
		Money     int     `db:"money"`
		StoreID   string  `db:"store_id"`
		Research  int     `db:"research"`
		StatsJSON string  `db:"stats_json"`
	}
	err := db.conn.Get(&row, "SELECT * FROM players WHERE id = ?", id.String())
	if err != nil {
		return game.Player{}, notFound(err, "player", id.String())
	}

	p := game.Player{
		ID:        uuid.MustParse(row.ID),
		Name:      row.Name,
		Fatigue:   row.Fatigue,
		Happiness: row.Happiness,
		Money:     row.Money,
		StoreID:   uuid.MustParse(row.StoreID),
		Research:  row.Research,
	}
	if err := json.Unmarshal([]byte(row.StatsJSON), &p.Stats); err != nil {
		return game.Player{}, fmt.Errorf("player %s stats: %w", id, err)
	}
	return p, nil
}

// SaveStore upserts a store row.
func (db *DB) SaveStore(s game.Store) error {
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO stores
		(id, name, rent, product_id, reputation, ingredient_qty, ingredient_freshness, prepared_qty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.Name, s.Rent, s.ProductID.String(),
		s.Reputation, s.IngredientQty, s.IngredientFreshness, s.PreparedQty,
	)
	return err
}

// LoadStore reads a store by id.
func (db *DB) LoadStore(id uuid.UUID) (game.Store, error) {
	var row struct {
		ID                  string  `db:"id"`
		Name                string  `db:"name"`
		Rent                int     `db:"rent"`
		ProductID           string  `db:"product_id"`
		Reputation          float64 `db:"reputation"`
		IngredientQty       int     `db:"ingredient_qty"`
		IngredientFreshness float64 `db:"ingredient_freshness"`
		PreparedQty         int     `db:"prepared_qty"`
	}
	err := db.conn.Get(&row, "SELECT * FROM stores WHERE id = ?", id.String())
	if err != nil {
		return game.Store{}, notFound(err, "store", id.String())
	}
	return game.Store{
		ID:                  uuid.MustParse(row.ID),
		Name:                row.Name,
		Rent:                row.Rent,
		ProductID:           uuid.MustParse(row.ProductID),
		Reputation:          row.Reputation,
		IngredientQty:       row.IngredientQty,
		IngredientFreshness: row.IngredientFreshness,
		PreparedQty:         row.PreparedQty,
	}, nil
}

// SaveProduct upserts a product row.
func (db *DB) SaveProduct(p game.Product) error {
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO products
		(id, name, price, quality, awareness) VALUES (?, ?, ?, ?, ?)`,
		p.ID.String(), p.Name, p.Price, p.Quality, p.Awareness,
	)
	return err
}

// LoadProduct reads a product by id.
func (db *DB) LoadProduct(id uuid.UUID) (game.Product, error) {
	var row struct {
		ID        string  `db:"id"`
		Name      string  `db:"name"`
		Price     int     `db:"price"`
		Quality   float64 `db:"quality"`
		Awareness float64 `db:"awareness"`
	}
	err := db.conn.Get(&row, "SELECT * FROM products WHERE id = ?", id.String())
	if err != nil {
		return game.Product{}, notFound(err, "product", id.String())
	}
	return game.Product{
		ID:        uuid.MustParse(row.ID),
		Name:      row.Name,
		Price:     row.Price,
		Quality:   row.Quality,
		Awareness: row.Awareness,
	}, nil
}

// SaveCompetitors writes all competitors (full replace).
func (db *DB) SaveCompetitors(cs []game.Competitor) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM competitors"); err != nil {
		return err
	}

	for _, c := range cs {
		storeIDs, _ := json.Marshal(c.StoreIDs)
		var bankruptSince *string
		if c.BankruptSince != nil {
			s := c.BankruptSince.Format(time.RFC3339)
			bankruptSince = &s
		}
		_, err := tx.Exec(`INSERT INTO competitors
			(id, name, money, strategy, store_ids_json, bankrupt_since)
			VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID.String(), c.Name, c.Money, c.Strategy, string(storeIDs), bankruptSince,
		)
		if err != nil {
			return fmt.Errorf("insert competitor %s: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// LoadCompetitors reads all competitors.
func (db *DB) LoadCompetitors() ([]game.Competitor, error) {
	type row struct {
		ID            string  `db:"id"`
		Name          string  `db:"name"`
		Money         int     `db:"money"`
		Strategy      string  `db:"strategy"`
		StoreIDsJSON  string  `db:"store_ids_json"`
		BankruptSince *string `db:"bankrupt_since"`
	}
	var rows []row
	if err := db.conn.Select(&rows, "SELECT * FROM competitors"); err != nil {
		return nil, err
	}

	competitors := make([]game.Competitor, 0, len(rows))
	for _, r := range rows {
		c := game.Competitor{
			ID:       uuid.MustParse(r.ID),
			Name:     r.Name,
			Money:    r.Money,
			Strategy: r.Strategy,
		}
		if err := json.Unmarshal([]byte(r.StoreIDsJSON), &c.StoreIDs); err != nil {
			return nil, fmt.Errorf("competitor %s stores: %w", r.Name, err)
		}
		if r.BankruptSince != nil {
			t, err := time.Parse(time.RFC3339, *r.BankruptSince)
			if err != nil {
				return nil, fmt.Errorf("competitor %s bankrupt_since: %w", r.Name, err)
			}
			c.BankruptSince = &t
		}
		competitors = append(competitors, c)
	}
	return competitors, nil
}

// SaveTurn stores the current turn.
func (db *DB) SaveTurn(t game.Turn) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO turns (key, number, date) VALUES ('current', ?, ?)",
		t.Number, t.Date.Format(time.RFC3339),
	)
	return err
}

// LoadTurn reads the current turn.
func (db *DB) LoadTurn() (game.Turn, error) {
	var row struct {
		Number int    `db:"number"`
		Date   string `db:"date"`
	}
	err := db.conn.Get(&row, "SELECT number, date FROM turns WHERE key = 'current'")
	if err != nil {
		return game.Turn{}, notFound(err, "turn", "current")
	}
	date, err := time.Parse(time.RFC3339, row.Date)
	if err != nil {
		return game.Turn{}, fmt.Errorf("turn date: %w", err)
	}
	return game.Turn{Number: row.Number, Date: date}, nil
}

// SaveAnalysis appends an analysis blob for a player.
func (db *DB) SaveAnalysis(playerID uuid.UUID, turn int, profile rival.BehaviorProfile) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	_, err = db.conn.Exec(
		"INSERT INTO analyses (player_id, turn, profile_json) VALUES (?, ?, ?)",
		playerID.String(), turn, string(blob),
	)
	return err
}

// RecentAnalyses returns the most recent analysis blobs for a player, newest
// first, bounded by limit.
func (db *DB) RecentAnalyses(playerID uuid.UUID, limit int) ([]rival.BehaviorProfile, error) {
	var blobs []string
	err := db.conn.Select(&blobs,
		"SELECT profile_json FROM analyses WHERE player_id = ? ORDER BY turn DESC LIMIT ?",
		playerID.String(), limit,
	)
	if err != nil {
		return nil, err
	}

	profiles := make([]rival.BehaviorProfile, 0, len(blobs))
	for _, b := range blobs {
		var p rival.BehaviorProfile
		if err := json.Unmarshal([]byte(b), &p); err != nil {
			return nil, fmt.Errorf("unmarshal analysis: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// GameState reads the singleton game-state row.
func (db *DB) GameState() (GameState, error) {
	var row struct {
		Segment       string  `db:"segment"`
		HoursUsed     float64 `db:"hours_used"`
		IngredientQty int     `db:"ingredient_qty"`
		Freshness     float64 `db:"freshness"`
		Reputation    float64 `db:"reputation"`
		ClockJSON     string  `db:"clock_json"`
	}
	err := db.conn.Get(&row,
		"SELECT segment, hours_used, ingredient_qty, freshness, reputation, clock_json FROM game_state WHERE id = 1")
	if err != nil {
		return GameState{}, notFound(err, "game_state", "1")
	}

	gs := GameState{
		Segment:       row.Segment,
		HoursUsed:     row.HoursUsed,
		IngredientQty: row.IngredientQty,
		Freshness:     row.Freshness,
		Reputation:    row.Reputation,
	}
	if err := json.Unmarshal([]byte(row.ClockJSON), &gs.Clock); err != nil {
		return GameState{}, fmt.Errorf("game state clock: %w", err)
	}
	return gs, nil
}

// SaveGameState writes the full singleton game-state row.
func (db *DB) SaveGameState(gs GameState) error {
	clockJSON, _ := json.Marshal(gs.Clock)
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO game_state
		(id, segment, hours_used, ingredient_qty, freshness, reputation, clock_json)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		gs.Segment, gs.HoursUsed, gs.IngredientQty, gs.Freshness, gs.Reputation, string(clockJSON),
	)
	return err
}

// PatchGameState updates a subset of the game-state row, creating it with
// defaults if missing.
func (db *DB) PatchGameState(patch GameStatePatch) error {
	gs, err := db.GameState()
	if err != nil {
		var nf *game.EntityNotFoundError
		if !errors.As(err, &nf) {
			return err
		}
		gs = GameState{Segment: "prep"}
	}

	if patch.Segment != nil {
		gs.Segment = *patch.Segment
	}
	if patch.HoursUsed != nil {
		gs.HoursUsed = *patch.HoursUsed
	}
	if patch.IngredientQty != nil {
		gs.IngredientQty = *patch.IngredientQty
	}
	if patch.Freshness != nil {
		gs.Freshness = *patch.Freshness
	}
	if patch.Reputation != nil {
		gs.Reputation = *patch.Reputation
	}
	if patch.Clock != nil {
		gs.Clock = *patch.Clock
	}

	return db.SaveGameState(gs)
}
