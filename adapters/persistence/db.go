package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammy-mbugua/portfolio/internal/config"
	"github.com/sammy-mbugua/portfolio/migrations"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

// RunMigrations applies the embedded schema migrations to dsn.
func RunMigrations(dsn string, log logger.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	version, dirty, _ := m.Version()
	log.Info(fmt.Sprintf("Database schema at version %d (dirty=%v)", version, dirty))
	return nil
}

// PostgreSQL error codes the repositories translate.
const (
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgUniqueViolation     = "23505"
	pgStringTooLong       = "22001"
)

// writeError turns a failed INSERT/UPDATE into an AppError. Constraint failures are the
// caller's fault; everything else is internal.
func writeError(resource string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return apperror.NewInvalidInput(fmt.Sprintf("%s references a parent that does not exist", resource), err)
		case pgCheckViolation:
			return apperror.NewInvalidInput(fmt.Sprintf("%s violates constraint %s", resource, pgErr.ConstraintName), err)
		case pgStringTooLong:
			return apperror.NewInvalidInput(fmt.Sprintf("%s has a value that is too long", resource), err)
		case pgUniqueViolation:
			return apperror.NewConflict(resource, pgErr.ConstraintName, pgErr.Detail)
		}
	}
	return apperror.NewInternal("failed to write "+resource, err)
}

// execAffecting runs a write that must touch a row, reporting NotFound otherwise.
func execAffecting(ctx context.Context, db *pgxpool.Pool, resource, id, query string, args ...any) error {
	cmdTag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return writeError(resource, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(resource, id)
	}
	return nil
}

func limitOffset(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return b
}
