package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campus-labs/college-enroll-api/internal/models"
)

// StatsRepository aggregates the dashboard counters.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository constructs the repository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect counts active students, offered courses and all enrollments.
func (r *StatsRepository) Collect(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	if err := r.db.GetContext(ctx, &stats.Students, `SELECT COUNT(*) FROM students WHERE is_active = TRUE`); err != nil {
		return models.Stats{}, fmt.Errorf("count students: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.Courses, `SELECT COUNT(*) FROM courses WHERE is_offered = TRUE`); err != nil {
		return models.Stats{}, fmt.Errorf("count courses: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.Enrollments, `SELECT COUNT(*) FROM enrollments`); err != nil {
		return models.Stats{}, fmt.Errorf("count enrollments: %w", err)
	}
	return stats, nil
}
