package repository

import (
	"database/sql"

	"github.com/alexanderramin/zenith/internal/db"
)

// NewSQLiteStore builds a Store over an open database.
func NewSQLiteStore(conn *sql.DB) *Store {
	return &Store{
		Goals:       NewSQLiteGoalRepo(conn),
		Preferences: NewSQLitePreferencesRepo(conn),
		Routine:     NewSQLiteRoutineRepo(conn, db.NewSQLiteUnitOfWork(conn)),
	}
}

// NewMemoryStore builds a Store held entirely in process memory.
func NewMemoryStore() *Store {
	return &Store{
		Goals:       NewMemoryGoalRepo(),
		Preferences: NewMemoryPreferencesRepo(),
		Routine:     NewMemoryRoutineRepo(),
	}
}
