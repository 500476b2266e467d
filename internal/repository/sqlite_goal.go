package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/zenith/internal/db"
	"github.com/alexanderramin/zenith/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, title, category, target_date, status) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		string(g.Category),
		g.TargetDateString(),
		string(g.Status),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) List(ctx context.Context) ([]domain.Goal, error) {
	query := `SELECT id, title, category, target_date, status FROM goals ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		var (
			g                        domain.Goal
			category, target, status string
		)
		if err := rows.Scan(&g.ID, &g.Title, &category, &target, &status); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		g.Category = domain.GoalCategory(category)
		g.Status = domain.GoalStatus(status)
		if g.TargetDate, err = parseDate(target); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGoalNotFound, id)
	}
	return nil
}
