// Package question implements the Question repository using PostgreSQL.
package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

const table = "questions"

var columns = []string{
	"id", "user_id", "question_text", "answer", "answer_pl",
	"category_id", "category_name", "qualification_id", "qualification_name",
	"tags", "is_active", "created_at", "updated_at",
}

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var q domain.Question
	err := row.Scan(
		&q.ID, &q.UserID, &q.QuestionText, &q.Answer, &q.AnswerPL,
		&q.CategoryID, &q.CategoryName, &q.QualificationID, &q.QualificationName,
		&q.Tags, &q.IsActive, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Create inserts a new question and returns the persisted row.
func (r *Repo) Create(ctx context.Context, question *domain.Question) (*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			question.ID, question.UserID, question.QuestionText, question.Answer, question.AnswerPL,
			question.CategoryID, question.CategoryName, question.QualificationID, question.QualificationName,
			question.Tags, question.IsActive, question.CreatedAt, question.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanQuestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "question", question.ID)
	}
	return created, nil
}

// GetByID returns a question by primary key with user_id filter.
// Returns domain.ErrNotFound if the question does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, questionID uuid.UUID) (*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": questionID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	question, err := scanQuestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "question", questionID)
	}
	return question, nil
}

// List returns the user's questions newest first, narrowed by the filter.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.QuestionFilter) ([]*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if filter.CategoryID != nil {
		builder = builder.Where(squirrel.Eq{"category_id": *filter.CategoryID})
	}
	if filter.ActiveOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := []*domain.Question{}
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}

// Count returns the number of active questions the user owns.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

// Update writes every mutable column for an owned question and returns the
// updated row. Returns domain.ErrNotFound on an ownership miss.
func (r *Repo) Update(ctx context.Context, question *domain.Question) (*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("question_text", question.QuestionText).
		Set("answer", question.Answer).
		Set("answer_pl", question.AnswerPL).
		Set("category_id", question.CategoryID).
		Set("category_name", question.CategoryName).
		Set("qualification_id", question.QualificationID).
		Set("qualification_name", question.QualificationName).
		Set("tags", question.Tags).
		Set("is_active", question.IsActive).
		Set("updated_at", question.UpdatedAt).
		Where(squirrel.Eq{"id": question.ID, "user_id": question.UserID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanQuestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "question", question.ID)
	}
	return updated, nil
}

// SoftDelete marks an owned question inactive. Returns domain.ErrNotFound if
// no active row matched.
func (r *Repo) SoftDelete(ctx context.Context, userID, questionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": questionID, "user_id": userID, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "question", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}
	return nil
}

// ClearCategoryRefs nulls category_id on every question of the user that
// references the category. The denormalized category_name snapshot is left
// untouched deliberately. Returns the number of questions touched.
func (r *Repo) ClearCategoryRefs(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("category_id", nil).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear category refs: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "question", categoryID)
	}
	return int(tag.RowsAffected()), nil
}

// ClearQualificationRefs nulls qualification_id on every question of the user
// that references the qualification, leaving qualification_name in place.
// Returns the number of questions touched.
func (r *Repo) ClearQualificationRefs(ctx context.Context, userID, qualificationID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("qualification_id", nil).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "qualification_id": qualificationID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear qualification refs: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "question", qualificationID)
	}
	return int(tag.RowsAffected()), nil
}
