package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammy-mbugua/portfolio/internal/domain/education"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

const educationColumns = "id, degree, institution, start_date, end_date, description, grade, location, created_at"

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID, &e.Degree, &e.Institution, &e.StartDate, &e.EndDate,
		&e.Description, &e.Grade, &e.Location, &e.CreatedAt,
	)
	return e, err
}

func (r *postgresEducationRepo) List(ctx context.Context, limit int) ([]*education.Education, error) {
	builder := psql.Select(educationColumns).
		From("education").
		OrderBy("end_date DESC", "created_at DESC", "id")
	builder = limitOffset(builder, limit, 0)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build education query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	defer rows.Close()

	items := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan education row", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return items, nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE id = $1`
	e, err := scanEducation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", id.String())
		}
		return nil, apperror.NewInternal("failed to query education", err)
	}
	return e, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (id, degree, institution, start_date, end_date, description, grade, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Degree, e.Institution, e.StartDate, e.EndDate,
		e.Description, e.Grade, e.Location, e.CreatedAt,
	)
	if err != nil {
		return writeError("education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			degree = $2, institution = $3, start_date = $4, end_date = $5,
			description = $6, grade = $7, location = $8
		WHERE id = $1
	`
	return execAffecting(ctx, r.db, "education", e.ID.String(), query,
		e.ID, e.Degree, e.Institution, e.StartDate, e.EndDate, e.Description, e.Grade, e.Location,
	)
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "education", id.String(), `DELETE FROM education WHERE id = $1`, id)
}

func (r *postgresEducationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM education`); err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	return nil
}
