package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/zenith/internal/db"
	"github.com/alexanderramin/zenith/internal/domain"
)

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.UserPreferences, error) {
	query := `SELECT wake_up_time, sleep_time, focus_time, interests FROM preferences WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var (
		p         domain.UserPreferences
		focus     string
		interests string
	)
	if err := row.Scan(&p.WakeUpTime, &p.SleepTime, &focus, &interests); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}
	p.FocusTime = domain.FocusPeriod(focus)

	tags, err := decodeTags(interests)
	if err != nil {
		return nil, err
	}
	p.Interests = tags
	return &p, nil
}

func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, p *domain.UserPreferences) error {
	interests, err := encodeTags(p.Interests)
	if err != nil {
		return err
	}
	query := `INSERT OR REPLACE INTO preferences (id, wake_up_time, sleep_time, focus_time, interests)
		VALUES ('default', ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, p.WakeUpTime, p.SleepTime, string(p.FocusTime), interests); err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}
