package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = `id, name, title, email, phone, location, github_url, linkedin_url,
	about, profile_image, resume, created_at, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Email, &p.Phone, &p.Location,
		&p.GithubURL, &p.LinkedinURL, &p.About, &p.ImageRef, &p.ResumeRef,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// First orders by creation so repeated calls agree; callers must not depend on which
// profile wins when several exist.
func (r *postgresProfileRepo) First(ctx context.Context) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at, id LIMIT 1`
	p, err := scanProfile(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", id.String())
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, name, title, email, phone, location, github_url, linkedin_url,
			about, profile_image, resume, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Email, p.Phone, p.Location, p.GithubURL, p.LinkedinURL,
		p.About, p.ImageRef, p.ResumeRef, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeError("profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET
			name = $2, title = $3, email = $4, phone = $5, location = $6, github_url = $7,
			linkedin_url = $8, about = $9, profile_image = $10, resume = $11, updated_at = $12
		WHERE id = $1
	`
	return execAffecting(ctx, r.db, "profile", p.ID.String(), query,
		p.ID, p.Name, p.Title, p.Email, p.Phone, p.Location, p.GithubURL,
		p.LinkedinURL, p.About, p.ImageRef, p.ResumeRef, p.UpdatedAt,
	)
}

func (r *postgresProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "profile", id.String(), `DELETE FROM profiles WHERE id = $1`, id)
}

func (r *postgresProfileRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM profiles`); err != nil {
		return apperror.NewInternal("failed to delete profiles", err)
	}
	return nil
}
