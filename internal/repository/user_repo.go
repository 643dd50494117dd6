package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"marg-ai/internal/domain"
)

// ErrDuplicateEmail se devuelve cuando el email ya está registrado.
var ErrDuplicateEmail = errors.New("email already registered")

const uniqueViolation = "23505"

// CareerSelection agrupa lo que se persiste al fijar una carrera objetivo.
type CareerSelection struct {
	CareerID string
	SkillGap domain.SkillGap
	Roadmap  domain.Roadmap
}

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateInterestProfile(ctx context.Context, userID string, profile domain.InterestProfile) error
	SaveCareerSelection(ctx context.Context, userID string, selection CareerSelection) error
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const userColumns = `
	id, full_name, email, password_hash, education_stage, weekly_study_hours,
	subjects, degree, major, cgpa_range, interest_profile, selected_career_id,
	skill_gap, roadmap, estimated_timeline, created_at, updated_at
`

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (id, full_name, email, password_hash, education_stage, weekly_study_hours,
			subjects, degree, major, cgpa_range, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	subjects := user.Subjects
	if subjects == nil {
		subjects = []domain.Subject{}
	}
	subjectsJSON, err := json.Marshal(subjects)
	if err != nil {
		return fmt.Errorf("marshal subjects: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.PasswordHash,
		string(user.EducationStage),
		string(user.WeeklyStudyHours),
		subjectsJSON,
		user.Degree,
		user.Major,
		user.CGPARange,
		user.CreatedAt,
		user.UpdatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *PgUserRepository) UpdateInterestProfile(ctx context.Context, userID string, profile domain.InterestProfile) error {
	const query = `
		UPDATE users
		SET interest_profile = $2, updated_at = $3
		WHERE id = $1
	`
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal interest profile: %w", err)
	}
	tag, err := r.pool.Exec(ctx, query, userID, profileJSON, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgUserRepository) SaveCareerSelection(ctx context.Context, userID string, selection CareerSelection) error {
	const query = `
		UPDATE users
		SET selected_career_id = $2, skill_gap = $3, roadmap = $4, estimated_timeline = $5, updated_at = $6
		WHERE id = $1
	`
	gapJSON, err := json.Marshal(selection.SkillGap)
	if err != nil {
		return fmt.Errorf("marshal skill gap: %w", err)
	}
	roadmapJSON, err := json.Marshal(selection.Roadmap.Phases)
	if err != nil {
		return fmt.Errorf("marshal roadmap: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query,
		userID,
		selection.CareerID,
		gapJSON,
		roadmapJSON,
		selection.Roadmap.EstimatedTimeline.String(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	var stage, pace string
	var subjectsJSON, profileJSON, gapJSON, rmJSON []byte
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&stage,
		&pace,
		&subjectsJSON,
		&u.Degree,
		&u.Major,
		&u.CGPARange,
		&profileJSON,
		&u.SelectedCareerID,
		&gapJSON,
		&rmJSON,
		&u.EstimatedTimeline,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}
	if err != nil {
		return domain.User{}, err
	}

	u.EducationStage = domain.EducationStage(stage)
	u.WeeklyStudyHours = domain.StudyPace(pace)

	if len(subjectsJSON) > 0 {
		if err := json.Unmarshal(subjectsJSON, &u.Subjects); err != nil {
			return domain.User{}, fmt.Errorf("decode subjects: %w", err)
		}
	}
	if len(profileJSON) > 0 {
		if err := json.Unmarshal(profileJSON, &u.InterestProfile); err != nil {
			return domain.User{}, fmt.Errorf("decode interest profile: %w", err)
		}
	}
	if len(gapJSON) > 0 {
		var gap domain.SkillGap
		if err := json.Unmarshal(gapJSON, &gap); err != nil {
			return domain.User{}, fmt.Errorf("decode skill gap: %w", err)
		}
		u.SkillGap = &gap
	}
	if len(rmJSON) > 0 {
		if err := json.Unmarshal(rmJSON, &u.Roadmap); err != nil {
			return domain.User{}, fmt.Errorf("decode roadmap: %w", err)
		}
	}
	return u, nil
}
