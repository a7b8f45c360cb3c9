package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammy-mbugua/portfolio/internal/domain/social"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type postgresSocialRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSocialRepo(db *pgxpool.Pool, logger logger.Logger) social.Repository {
	return &postgresSocialRepo{db: db, logger: logger}
}

func (r *postgresSocialRepo) List(ctx context.Context) ([]*social.Link, error) {
	rows, err := r.db.Query(ctx, `SELECT id, platform, url, sort_order FROM social_links ORDER BY sort_order, id`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query social links", err)
	}
	defer rows.Close()

	links := make([]*social.Link, 0)
	for rows.Next() {
		l := &social.Link{}
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.Order); err != nil {
			return nil, apperror.NewInternal("failed to scan social link row", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating social link rows", err)
	}
	return links, nil
}

func (r *postgresSocialRepo) FindByID(ctx context.Context, id uuid.UUID) (*social.Link, error) {
	l := &social.Link{}
	err := r.db.QueryRow(ctx, `SELECT id, platform, url, sort_order FROM social_links WHERE id = $1`, id).
		Scan(&l.ID, &l.Platform, &l.URL, &l.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("social link", id.String())
		}
		return nil, apperror.NewInternal("failed to query social link", err)
	}
	return l, nil
}

func (r *postgresSocialRepo) Save(ctx context.Context, l *social.Link) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO social_links (id, platform, url, sort_order) VALUES ($1, $2, $3, $4)`,
		l.ID, string(l.Platform), l.URL, l.Order,
	)
	if err != nil {
		return writeError("social link", err)
	}
	return nil
}

func (r *postgresSocialRepo) Update(ctx context.Context, l *social.Link) error {
	return execAffecting(ctx, r.db, "social link", l.ID.String(),
		`UPDATE social_links SET platform = $2, url = $3, sort_order = $4 WHERE id = $1`,
		l.ID, string(l.Platform), l.URL, l.Order,
	)
}

func (r *postgresSocialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "social link", id.String(), `DELETE FROM social_links WHERE id = $1`, id)
}

func (r *postgresSocialRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM social_links`); err != nil {
		return apperror.NewInternal("failed to delete social links", err)
	}
	return nil
}
