// Package persistence records simulation runs in SQLite: one row per run,
// periodic tick statistics, and the event log. The journal is write-mostly
// telemetry; a simulation is never restored from it.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/ant-world/internal/engine"
)

// ErrNoRun is returned when writing before StartRun.
var ErrNoRun = errors.New("no run started")

// DB wraps a SQLite connection for the run journal.
type DB struct {
	conn  *sqlx.DB
	runID string
}

// Run describes one recorded simulation run.
type Run struct {
	ID        string `db:"id"`
	Seed      int64  `db:"seed"`
	StartedAt string `db:"started_at"`
	Config    string `db:"config_json"`
}

// TickRecord is one row of tick statistics.
type TickRecord struct {
	RunID string `db:"run_id"`
	Tick  uint64 `db:"tick"`
	engine.SimStats
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
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
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		config_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tick_stats (
		run_id TEXT NOT NULL REFERENCES runs(id),
		tick INTEGER NOT NULL,
		ants INTEGER NOT NULL,
		carrying INTEGER NOT NULL,
		markers INTEGER NOT NULL,
		pheromone REAL NOT NULL,
		food_sources INTEGER NOT NULL,
		food_remaining INTEGER NOT NULL,
		food_collected INTEGER NOT NULL,
		food_delivered INTEGER NOT NULL,
		markers_emitted INTEGER NOT NULL,
		markers_culled INTEGER NOT NULL,
		paths_charted INTEGER NOT NULL,
		paths_failed INTEGER NOT NULL,
		rule_errors INTEGER NOT NULL,
		PRIMARY KEY (run_id, tick)
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		tick INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_run_tick ON events(run_id, tick);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// StartRun records a new run and makes it the target of later writes.
// cfg is stored as JSON for reference.
func (db *DB) StartRun(seed int64, cfg any) (string, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	id := uuid.NewString()
	_, err = db.conn.Exec(
		"INSERT INTO runs (id, seed, started_at, config_json) VALUES (?, ?, ?, ?)",
		id, seed, time.Now().UTC().Format(time.RFC3339), string(cfgJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	db.runID = id
	slog.Info("journal run started", "run", id, "seed", seed)
	return id, nil
}

// RunID returns the current run, or "" before StartRun.
func (db *DB) RunID() string {
	return db.runID
}

// SaveTick stores the statistics for one tick of the current run.
func (db *DB) SaveTick(tick uint64, stats engine.SimStats) error {
	if db.runID == "" {
		return ErrNoRun
	}
	_, err := db.conn.NamedExec(`INSERT OR REPLACE INTO tick_stats
		(run_id, tick, ants, carrying, markers, pheromone, food_sources, food_remaining,
		 food_collected, food_delivered, markers_emitted, markers_culled,
		 paths_charted, paths_failed, rule_errors)
		VALUES (:run_id, :tick, :ants, :carrying, :markers, :pheromone, :food_sources, :food_remaining,
		 :food_collected, :food_delivered, :markers_emitted, :markers_culled,
		 :paths_charted, :paths_failed, :rule_errors)`,
		TickRecord{RunID: db.runID, Tick: tick, SimStats: stats},
	)
	if err != nil {
		return fmt.Errorf("insert tick %d: %w", tick, err)
	}
	return nil
}

// SaveEvents appends events to the current run.
func (db *DB) SaveEvents(events []engine.Event) error {
	if db.runID == "" {
		return ErrNoRun
	}
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex("INSERT INTO events (run_id, tick, description, category) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(db.runID, e.Tick, e.Description, e.Category); err != nil {
			return fmt.Errorf("insert event at tick %d: %w", e.Tick, err)
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent N events of the current run, newest
// first.
func (db *DB) RecentEvents(limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT tick, description, category FROM events WHERE run_id = ? ORDER BY id DESC LIMIT ?",
		db.runID, limit,
	)
	return events, err
}

// TickHistory returns the recorded statistics of the current run in tick
// order.
func (db *DB) TickHistory() ([]TickRecord, error) {
	var rows []TickRecord
	err := db.conn.Select(&rows,
		"SELECT * FROM tick_stats WHERE run_id = ? ORDER BY tick",
		db.runID,
	)
	return rows, err
}

// Runs lists every recorded run, oldest first.
func (db *DB) Runs() ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs, "SELECT id, seed, started_at, config_json FROM runs ORDER BY started_at, id")
	return runs, err
}
