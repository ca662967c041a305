package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Migration represents one schema step
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in order; applied versions are tracked in schema_migrations.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_borough_records",
		SQL: `CREATE TABLE IF NOT EXISTS borough_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			borough TEXT NOT NULL,
			retail_recreation_gmr INTEGER,
			grocery_pharmacy_gmr INTEGER,
			parks_gmr INTEGER,
			transit_gmr INTEGER,
			workplaces_gmr INTEGER,
			residential_gmr INTEGER,
			new_cases INTEGER,
			total_cases INTEGER,
			new_deaths INTEGER,
			total_deaths INTEGER
		)`,
	},
	{
		Version: 2,
		Name:    "index_borough_records_date",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_borough_records_date ON borough_records(date)`,
	},
}

// EnsureSchema applies any migration not yet recorded
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		err := Transaction(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.SQL); err != nil {
				return fmt.Errorf("failed to execute migration SQL: %w", err)
			}
			_, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name)
			if err != nil {
				return fmt.Errorf("failed to record migration: %w", err)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		slog.Info("applied migration", "version", m.Version, "name", m.Name)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
