package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"shopmap/internal/apperr"
)

type Stats struct {
	Users    int `json:"users" db:"users"`
	Shops    int `json:"shops" db:"shops"`
	Posts    int `json:"posts" db:"posts"`
	Comments int `json:"comments" db:"comments"`
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountTablesDB(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
		`)

	if err != nil {
		return 0, apperr.Storage("failed to count database tables: %v", err)
	}

	return count, nil
}

func (r *statsRepository) CountRows(ctx context.Context) (*Stats, error) {
	var stats Stats

	err := r.db.GetContext(ctx, &stats, `
			SELECT
				(SELECT COUNT(*) FROM users) AS users,
				(SELECT COUNT(*) FROM shops) AS shops,
				(SELECT COUNT(*) FROM posts) AS posts,
				(SELECT COUNT(*) FROM comments) AS comments
		`)

	if err != nil {
		return nil, apperr.Storage("failed to count rows: %v", err)
	}

	return &stats, nil
}
