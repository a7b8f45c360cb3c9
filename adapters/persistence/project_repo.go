package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

const projectColumns = "id, title, description, technologies, github_url, live_url, featured, sort_order, image, created_at"

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Technologies,
		&p.GithubURL,
		&p.LiveURL,
		&p.Featured,
		&p.Order,
		&p.ImageRef,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func applyProjectFilter(b sq.SelectBuilder, f project.Filter) sq.SelectBuilder {
	if f.FeaturedOnly {
		b = b.Where(sq.Eq{"featured": true})
	}
	if f.ExcludeID != nil {
		// sq.NotEq would expand the uuid array into a NOT IN list.
		b = b.Where("id <> ?", *f.ExcludeID)
	}
	return b
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, title, description, technologies, github_url, live_url, featured, sort_order, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Technologies, p.GithubURL,
		p.LiveURL, p.Featured, p.Order, p.ImageRef, p.CreatedAt,
	)
	if err != nil {
		return writeError("project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, technologies = $4, github_url = $5,
			live_url = $6, featured = $7, sort_order = $8, image = $9
		WHERE id = $1
	`
	return execAffecting(ctx, r.db, "project", p.ID.String(), query,
		p.ID, p.Title, p.Description, p.Technologies, p.GithubURL,
		p.LiveURL, p.Featured, p.Order, p.ImageRef,
	)
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "project", id.String(), `DELETE FROM projects WHERE id = $1`, id)
}

func (r *postgresProjectRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM projects`); err != nil {
		return apperror.NewInternal("failed to delete projects", err)
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("project", id.String())
	}
	return p, err
}

func (r *postgresProjectRepo) List(ctx context.Context, filter project.Filter, limit, offset int) ([]*project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		OrderBy("sort_order ASC", "created_at DESC", "id")
	builder = applyProjectFilter(builder, filter)
	builder = limitOffset(builder, limit, offset)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}

	return scanProjects(rows)
}

func (r *postgresProjectRepo) Count(ctx context.Context, filter project.Filter) (int, error) {
	builder := applyProjectFilter(psql.Select("COUNT(*)").From("projects"), filter)
	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build project count query", err)
	}
	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count projects", err)
	}
	return n, nil
}
