package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 1

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS financial_records (
					id TEXT PRIMARY KEY,
					date DATETIME NOT NULL,
					merchant TEXT NOT NULL,
					category TEXT,
					status TEXT,
					note TEXT,
					amount REAL NOT NULL,
					account TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_financial_date ON financial_records(date)`,
				`CREATE INDEX idx_financial_merchant ON financial_records(merchant)`,

				`CREATE TABLE IF NOT EXISTS messages (
					id TEXT PRIMARY KEY,
					date DATETIME NOT NULL,
					sender TEXT,
					subject TEXT,
					body TEXT,
					folder TEXT,
					status TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_messages_date ON messages(date)`,
				`CREATE INDEX idx_messages_folder ON messages(folder)`,

				`CREATE TABLE IF NOT EXISTS calendar_items (
					id TEXT PRIMARY KEY,
					start DATETIME NOT NULL,
					title TEXT NOT NULL,
					notes TEXT,
					calendar TEXT,
					status TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_calendar_start ON calendar_items(start)`,

				`CREATE TABLE IF NOT EXISTS notes (
					id TEXT PRIMARY KEY,
					created DATETIME,
					title TEXT,
					body TEXT,
					folder TEXT
				)`,
				`CREATE INDEX idx_notes_folder ON notes(folder)`,

				`CREATE TABLE IF NOT EXISTS place_visits (
					id TEXT PRIMARY KEY,
					arrived DATETIME NOT NULL,
					place TEXT NOT NULL,
					address TEXT,
					category TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_visits_arrived ON place_visits(arrived)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
