package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"marg-ai/internal/domain"
)

// CareerRepository lee el catálogo de carreras persistido.
type CareerRepository interface {
	List(ctx context.Context) ([]domain.Career, error)
}

type PgCareerRepository struct {
	pool *pgxpool.Pool
}

func NewPgCareerRepository(pool *pgxpool.Pool) *PgCareerRepository {
	return &PgCareerRepository{pool: pool}
}

// List devuelve las carreras en el orden definido por la columna position.
func (r *PgCareerRepository) List(ctx context.Context) ([]domain.Career, error) {
	const query = `
		SELECT id, title, description, interest_tags, required_skills,
			market_demand, salary_range, avg_readiness_months
		FROM careers
		ORDER BY position ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var careers []domain.Career
	for rows.Next() {
		var c domain.Career
		var tags []string
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&tags,
			&c.RequiredSkills,
			&c.MarketDemand,
			&c.SalaryRange,
			&c.AvgReadinessMonths,
		); err != nil {
			return nil, err
		}
		for _, raw := range tags {
			if tag, ok := domain.ParseInterestTag(raw); ok {
				c.InterestTags = append(c.InterestTags, tag)
			}
		}
		careers = append(careers, c)
	}
	return careers, rows.Err()
}

// Seed inserta las carreras dadas si la tabla está vacía. Devuelve cuántas filas insertó.
func (r *PgCareerRepository) Seed(ctx context.Context, careers []domain.Career) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM careers`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	const insert = `
		INSERT INTO careers (id, title, description, interest_tags, required_skills,
			market_demand, salary_range, avg_readiness_months, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	for i, c := range careers {
		tags := make([]string, len(c.InterestTags))
		for j, t := range c.InterestTags {
			tags[j] = string(t)
		}
		if _, err := tx.Exec(ctx, insert,
			c.ID, c.Title, c.Description, tags, c.RequiredSkills,
			c.MarketDemand, c.SalaryRange, c.AvgReadinessMonths, i,
		); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(careers), nil
}
