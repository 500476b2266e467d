package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL CHECK (length(trim(title)) > 0),
		category TEXT NOT NULL CHECK (category IN ('Career','Health','Personal','Financial','Skill')),
		target_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active','completed','on-hold'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		id TEXT PRIMARY KEY CHECK (id = 'default'),
		wake_up_time TEXT NOT NULL,
		sleep_time TEXT NOT NULL,
		focus_time TEXT NOT NULL CHECK (focus_time IN ('Morning','Afternoon','Evening')),
		interests TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS routine_items (
		position INTEGER PRIMARY KEY,
		time TEXT NOT NULL,
		activity TEXT NOT NULL,
		duration TEXT NOT NULL,
		category TEXT NOT NULL
	)`,
}
