package db

import (
	"database/sql"
	"fmt"
)

// schemaVersion is the current schema version, recorded in PRAGMA
// user_version. The schema is fixed at version 1.
const schemaVersion = 1

// migrations is an ordered list of SQL statements to run.
// Every statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS visitors (
		id             INTEGER  PRIMARY KEY AUTOINCREMENT,
		name           TEXT     NOT NULL,
		purpose        TEXT     NOT NULL,
		contact        TEXT     NOT NULL,
		check_in_time  DATETIME NOT NULL,
		check_out_time DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visitors_name ON visitors(name)`,
	`CREATE INDEX IF NOT EXISTS idx_visitors_check_out_time ON visitors(check_out_time)`,
}

// migrate runs all migrations in order and stamps the schema version.
// A database stamped with a newer version than this build understands is
// refused rather than modified.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("stamping schema version: %w", err)
	}

	return nil
}
