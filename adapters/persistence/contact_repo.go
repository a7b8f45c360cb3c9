package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

const contactColumns = "id, name, email, subject, message, created_at, read"

func scanMessage(row pgx.Row) (*contact.Message, error) {
	m := &contact.Message{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt, &m.Read)
	return m, err
}

func applyContactFilter(b sq.SelectBuilder, f contact.ListFilter) sq.SelectBuilder {
	if f.Read != nil {
		b = b.Where(sq.Eq{"read": *f.Read})
	}
	return b
}

func (r *postgresContactRepo) Save(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at, read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Body, m.CreatedAt, m.Read)
	if err != nil {
		return writeError("contact message", err)
	}
	return nil
}

func (r *postgresContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	m, err := scanMessage(r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("contact message", id.String())
		}
		return nil, apperror.NewInternal("failed to query contact message", err)
	}
	return m, nil
}

func (r *postgresContactRepo) List(ctx context.Context, filter contact.ListFilter, limit, offset int) ([]*contact.Message, error) {
	builder := psql.Select(contactColumns).
		From("contact_messages").
		OrderBy("created_at DESC", "id")
	builder = applyContactFilter(builder, filter)
	builder = limitOffset(builder, limit, offset)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build contact message query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contact messages", err)
	}
	defer rows.Close()

	messages := make([]*contact.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan contact message row", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact message rows", err)
	}
	return messages, nil
}

func (r *postgresContactRepo) Count(ctx context.Context, filter contact.ListFilter) (int, error) {
	sql, args, err := applyContactFilter(psql.Select("COUNT(*)").From("contact_messages"), filter).ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build contact message count query", err)
	}
	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count contact messages", err)
	}
	return n, nil
}

// SetRead flips the read flag, the only mutation a stored message allows.
func (r *postgresContactRepo) SetRead(ctx context.Context, ids []uuid.UUID, read bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	sql, args, err := psql.Update("contact_messages").
		Set("read", read).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build mark read query", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, apperror.NewInternal("failed to update contact messages", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *postgresContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "contact message", id.String(), `DELETE FROM contact_messages WHERE id = $1`, id)
}
