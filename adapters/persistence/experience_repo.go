package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/domain/experience"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

const experienceColumns = "id, title, company, location, start_date, end_date, description, currently_working, created_at"

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate,
		&e.Description, &e.CurrentlyWorking, &e.CreatedAt,
	)
	e.Achievements = []experience.Achievement{}
	return e, err
}

func (r *postgresExperienceRepo) List(ctx context.Context, limit int) ([]*experience.Experience, error) {
	builder := psql.Select(experienceColumns).
		From("experiences").
		OrderBy("start_date DESC", "created_at DESC", "id")
	builder = limitOffset(builder, limit, 0)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build experience query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience", err)
	}
	defer rows.Close()

	items := make([]*experience.Experience, 0)
	byID := make(map[uuid.UUID]*experience.Experience)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan experience row", err)
		}
		items = append(items, e)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}

	if err := r.attachAchievements(ctx, byID); err != nil {
		return nil, err
	}
	return items, nil
}

// attachAchievements loads achievements for every experience in one query.
func (r *postgresExperienceRepo) attachAchievements(ctx context.Context, byID map[uuid.UUID]*experience.Experience) error {
	if len(byID) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	sql, args, err := psql.Select("id, experience_id, description, sort_order").
		From("achievements").
		Where(sq.Eq{"experience_id": ids}).
		OrderBy("sort_order", "id").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build achievements query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return apperror.NewInternal("failed to query achievements", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a experience.Achievement
		if err := rows.Scan(&a.ID, &a.ExperienceID, &a.Description, &a.Order); err != nil {
			return apperror.NewInternal("failed to scan achievement row", err)
		}
		owner, ok := byID[a.ExperienceID]
		if !ok {
			r.logger.Warn("Achievement without loaded experience", zap.String("achievement_id", a.ID.String()))
			continue
		}
		owner.Achievements = append(owner.Achievements, a)
	}
	if err := rows.Err(); err != nil {
		return apperror.NewInternal("error iterating achievement rows", err)
	}
	return nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	e, err := scanExperience(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", id.String())
		}
		return nil, apperror.NewInternal("failed to query experience", err)
	}
	if err := r.attachAchievements(ctx, map[uuid.UUID]*experience.Experience{e.ID: e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	e.Normalize()
	query := `
		INSERT INTO experiences (id, title, company, location, start_date, end_date, description, currently_working, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Title, e.Company, e.Location, e.StartDate, e.EndDate,
		e.Description, e.CurrentlyWorking, e.CreatedAt,
	)
	if err != nil {
		return writeError("experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	e.Normalize()
	query := `
		UPDATE experiences SET
			title = $2, company = $3, location = $4, start_date = $5, end_date = $6,
			description = $7, currently_working = $8
		WHERE id = $1
	`
	return execAffecting(ctx, r.db, "experience", e.ID.String(), query,
		e.ID, e.Title, e.Company, e.Location, e.StartDate, e.EndDate, e.Description, e.CurrentlyWorking,
	)
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "experience", id.String(), `DELETE FROM experiences WHERE id = $1`, id)
}

func (r *postgresExperienceRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM experiences`); err != nil {
		return apperror.NewInternal("failed to delete experiences", err)
	}
	return nil
}

func (r *postgresExperienceRepo) FindAchievementByID(ctx context.Context, id uuid.UUID) (*experience.Achievement, error) {
	a := &experience.Achievement{}
	err := r.db.QueryRow(ctx,
		`SELECT id, experience_id, description, sort_order FROM achievements WHERE id = $1`, id,
	).Scan(&a.ID, &a.ExperienceID, &a.Description, &a.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("achievement", id.String())
		}
		return nil, apperror.NewInternal("failed to query achievement", err)
	}
	return a, nil
}

func (r *postgresExperienceRepo) SaveAchievement(ctx context.Context, a *experience.Achievement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO achievements (id, experience_id, description, sort_order) VALUES ($1, $2, $3, $4)`,
		a.ID, a.ExperienceID, a.Description, a.Order,
	)
	if err != nil {
		return writeError("achievement", err)
	}
	return nil
}

func (r *postgresExperienceRepo) UpdateAchievement(ctx context.Context, a *experience.Achievement) error {
	return execAffecting(ctx, r.db, "achievement", a.ID.String(),
		`UPDATE achievements SET experience_id = $2, description = $3, sort_order = $4 WHERE id = $1`,
		a.ID, a.ExperienceID, a.Description, a.Order,
	)
}

func (r *postgresExperienceRepo) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "achievement", id.String(), `DELETE FROM achievements WHERE id = $1`, id)
}
