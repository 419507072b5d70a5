/*
Package sqlite provides the durable server-side balance-state store.

PURPOSE:
  Implements engine.Store on SQLite for the state-storage service. The
  whole persisted surface is ONE record: the two balances, the rollover
  watermark, and a server-stamped updated_at.

SINGLE-RECORD TABLE:
  balance_state has a fixed primary key of 1. Saves upsert that row;
  last write wins, with no conflict detection. That is the entire
  consistency model of the storage collaborator - two open sessions
  writing concurrently is explicitly last-write-wins.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Readers don't block the writer
  - Better crash recovery

MIGRATION:
  Schema is auto-migrated on New(). For a production deployment, use a
  versioned migration tool instead.

USAGE:
  store, err := sqlite.New("./data/savings.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - engine/state.go: Interface and record definition
  - api/handlers.go: The HTTP surface over this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/savings-engine/engine"
)

// Store implements engine.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- The single balance-state record (id is always 1)
	CREATE TABLE IF NOT EXISTS balance_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		current_longterm TEXT NOT NULL,
		current_buffer TEXT NOT NULL,
		last_rollover_ym TEXT,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the persisted state, or (nil, nil) when none exists yet.
func (s *Store) Load(ctx context.Context) (*engine.BalanceState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT current_longterm, current_buffer, last_rollover_ym, updated_at
		FROM balance_state WHERE id = 1`)

	var (
		longterm, buffer string
		rolloverYM       sql.NullString
		updatedAt        string
	)
	if err := row.Scan(&longterm, &buffer, &rolloverYM, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load balance state: %w", err)
	}

	st := engine.BalanceState{}
	var err error
	if st.CurrentLongterm, err = decimal.NewFromString(longterm); err != nil {
		return nil, fmt.Errorf("corrupt current_longterm %q: %w", longterm, err)
	}
	if st.CurrentBuffer, err = decimal.NewFromString(buffer); err != nil {
		return nil, fmt.Errorf("corrupt current_buffer %q: %w", buffer, err)
	}
	if rolloverYM.Valid {
		st.LastRolloverYM = engine.YearMonth(rolloverYM.String)
	}
	if st.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("corrupt updated_at %q: %w", updatedAt, err)
	}
	return &st, nil
}

// Save upserts the single state record, stamping updated_at, and
// returns the stored record.
func (s *Store) Save(ctx context.Context, st engine.BalanceState) (engine.BalanceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st.UpdatedAt = time.Now().UTC()

	var rolloverYM sql.NullString
	if !st.LastRolloverYM.IsZero() {
		rolloverYM = sql.NullString{String: string(st.LastRolloverYM), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO balance_state (id, current_longterm, current_buffer, last_rollover_ym, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_longterm = excluded.current_longterm,
			current_buffer = excluded.current_buffer,
			last_rollover_ym = excluded.last_rollover_ym,
			updated_at = excluded.updated_at`,
		st.CurrentLongterm.String(),
		st.CurrentBuffer.String(),
		rolloverYM,
		st.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return engine.BalanceState{}, fmt.Errorf("failed to save balance state: %w", err)
	}
	return st, nil
}
