package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/zenith/internal/db"
	"github.com/alexanderramin/zenith/internal/domain"
)

// SQLiteRoutineRepo implements RoutineRepo using a SQLite database. Replace
// runs inside a UnitOfWork so a failed write rolls back to the old routine.
type SQLiteRoutineRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteRoutineRepo creates a new SQLiteRoutineRepo.
func NewSQLiteRoutineRepo(conn db.DBTX, uow db.UnitOfWork) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: conn, uow: uow}
}

func (r *SQLiteRoutineRepo) Get(ctx context.Context) ([]domain.RoutineItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT time, activity, duration, category FROM routine_items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing routine items: %w", err)
	}
	defer rows.Close()

	items := []domain.RoutineItem{}
	for rows.Next() {
		var it domain.RoutineItem
		if err := rows.Scan(&it.Time, &it.Activity, &it.Duration, &it.Category); err != nil {
			return nil, fmt.Errorf("scanning routine item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routine items: %w", err)
	}
	return items, nil
}

func (r *SQLiteRoutineRepo) Replace(ctx context.Context, items []domain.RoutineItem) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM routine_items`); err != nil {
			return fmt.Errorf("clearing routine: %w", err)
		}
		for i, it := range items {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO routine_items (position, time, activity, duration, category) VALUES (?, ?, ?, ?, ?)`,
				i, it.Time, it.Activity, it.Duration, it.Category)
			if err != nil {
				return fmt.Errorf("inserting routine item %d: %w", i, err)
			}
		}
		return nil
	})
}
