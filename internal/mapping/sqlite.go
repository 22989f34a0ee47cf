package mapping

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/mailbox-taxonomy/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Get retrieves the stored mapping for an account along with its version.
// Returns (nil, 0, nil) when no mapping exists.
func (s *SQLiteStore) Get(
	ctx context.Context, accountID string,
) (model.SuggestedMapping, int64, error) {
	var row struct {
		Mapping string `db:"mapping"`
		Version int64  `db:"version"`
	}

	err := s.db.GetContext(ctx, &row,
		"SELECT mapping, version FROM mappings WHERE account_id = ?",
		accountID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("querying mapping for %s: %w", accountID, err)
	}

	var mapping model.SuggestedMapping
	if err := json.Unmarshal([]byte(row.Mapping), &mapping); err != nil {
		return nil, 0, fmt.Errorf("decoding mapping for %s: %w", accountID, err)
	}

	return mapping, row.Version, nil
}

// Put stores a mapping for an account. version must match the currently
// stored version (0 for a first write); a mismatch returns
// ErrVersionConflict and writes nothing.
func (s *SQLiteStore) Put(
	ctx context.Context,
	accountID string,
	mapping model.SuggestedMapping,
	version int64,
) error {
	payload, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("encoding mapping for %s: %w", accountID, err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current int64
	err = tx.GetContext(ctx, &current,
		"SELECT version FROM mappings WHERE account_id = ?", accountID,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if version != 0 {
			return fmt.Errorf(
				"no stored mapping for %s at version %d: %w",
				accountID, version, ErrVersionConflict,
			)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO mappings (id, account_id, mapping, version, updated_at)
			VALUES (?, ?, ?, 1, ?)`,
			uuid.New().String(), accountID, string(payload), time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("inserting mapping for %s: %w", accountID, err)
		}

	case err != nil:
		return fmt.Errorf("reading mapping version for %s: %w", accountID, err)

	default:
		if current != version {
			return fmt.Errorf(
				"stored version %d, caller read %d: %w",
				current, version, ErrVersionConflict,
			)
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE mappings SET mapping = ?, version = ?, updated_at = ?
			WHERE account_id = ?`,
			string(payload), version+1, time.Now().UTC(), accountID,
		)
		if err != nil {
			return fmt.Errorf("updating mapping for %s: %w", accountID, err)
		}
	}

	return tx.Commit()
}
