package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func (r *postgresSkillRepo) ListCategoriesWithSkills(ctx context.Context) ([]*skill.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, sort_order FROM skill_categories ORDER BY sort_order, name COLLATE "C", id`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skill categories", err)
	}
	categories := make([]*skill.Category, 0)
	byID := make(map[uuid.UUID]*skill.Category)
	for rows.Next() {
		c := &skill.Category{Skills: []skill.Skill{}}
		if err := rows.Scan(&c.ID, &c.Name, &c.Order); err != nil {
			rows.Close()
			return nil, apperror.NewInternal("failed to scan skill category row", err)
		}
		categories = append(categories, c)
		byID[c.ID] = c
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill category rows", err)
	}
	if len(categories) == 0 {
		return categories, nil
	}

	ids := make([]uuid.UUID, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	sql, args, err := psql.Select("id, category_id, name, proficiency, sort_order").
		From("skills").
		Where(sq.Eq{"category_id": ids}).
		// byte order on name, matching skill.SortSkills
		OrderBy("sort_order", `name COLLATE "C"`, "id").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skills query", err)
	}
	skillRows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var s skill.Skill
		if err := skillRows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Proficiency, &s.Order); err != nil {
			return nil, apperror.NewInternal("failed to scan skill row", err)
		}
		if c, ok := byID[s.CategoryID]; ok {
			c.Skills = append(c.Skills, s)
		}
	}
	if err := skillRows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return categories, nil
}

func (r *postgresSkillRepo) FindCategoryByID(ctx context.Context, id uuid.UUID) (*skill.Category, error) {
	c := &skill.Category{Skills: []skill.Skill{}}
	err := r.db.QueryRow(ctx, `SELECT id, name, sort_order FROM skill_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill category", id.String())
		}
		return nil, apperror.NewInternal("failed to query skill category", err)
	}
	return c, nil
}

func (r *postgresSkillRepo) SaveCategory(ctx context.Context, c *skill.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_categories (id, name, sort_order) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Order,
	)
	if err != nil {
		return writeError("skill category", err)
	}
	return nil
}

func (r *postgresSkillRepo) UpdateCategory(ctx context.Context, c *skill.Category) error {
	return execAffecting(ctx, r.db, "skill category", c.ID.String(),
		`UPDATE skill_categories SET name = $2, sort_order = $3 WHERE id = $1`,
		c.ID, c.Name, c.Order,
	)
}

func (r *postgresSkillRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "skill category", id.String(), `DELETE FROM skill_categories WHERE id = $1`, id)
}

func (r *postgresSkillRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM skill_categories`); err != nil {
		return apperror.NewInternal("failed to delete skill categories", err)
	}
	return nil
}

func (r *postgresSkillRepo) FindSkillByID(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	s := &skill.Skill{}
	err := r.db.QueryRow(ctx,
		`SELECT id, category_id, name, proficiency, sort_order FROM skills WHERE id = $1`, id,
	).Scan(&s.ID, &s.CategoryID, &s.Name, &s.Proficiency, &s.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", id.String())
		}
		return nil, apperror.NewInternal("failed to query skill", err)
	}
	return s, nil
}

func (r *postgresSkillRepo) SaveSkill(ctx context.Context, s *skill.Skill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, category_id, name, proficiency, sort_order) VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.CategoryID, s.Name, s.Proficiency, s.Order,
	)
	if err != nil {
		return writeError("skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) UpdateSkill(ctx context.Context, s *skill.Skill) error {
	return execAffecting(ctx, r.db, "skill", s.ID.String(),
		`UPDATE skills SET category_id = $2, name = $3, proficiency = $4, sort_order = $5 WHERE id = $1`,
		s.ID, s.CategoryID, s.Name, s.Proficiency, s.Order,
	)
}

func (r *postgresSkillRepo) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, "skill", id.String(), `DELETE FROM skills WHERE id = $1`, id)
}
