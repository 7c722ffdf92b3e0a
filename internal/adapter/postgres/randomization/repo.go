// Package randomization implements persistence for review sessions and their
// bookkeeping rows (selected categories, used questions, postponed questions).
// The bookkeeping tables are subordinate to the session: rows carry the parent
// randomization ID plus the owning user ID for ownership checks, and are
// removed in the same transaction that deletes the parent.
package randomization

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

const (
	table          = "randomizations"
	selectedTable  = "selected_categories"
	usedTable      = "used_questions"
	postponedTable = "postponed_questions"
)

var columns = []string{
	"id", "user_id", "show_answer", "status", "current_question_id",
	"created_at", "updated_at",
}

var bookkeepingColumns = []string{"id", "randomization_id", "user_id", "%s", "created_at"}

// Repo provides randomization session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new randomization repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanRandomization(row pgx.Row) (*domain.Randomization, error) {
	var s domain.Randomization
	err := row.Scan(
		&s.ID, &s.UserID, &s.ShowAnswer, &s.Status, &s.CurrentQuestionID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func bkColumns(refColumn string) []string {
	cols := make([]string, len(bookkeepingColumns))
	for i, c := range bookkeepingColumns {
		if c == "%s" {
			cols[i] = refColumn
		} else {
			cols[i] = c
		}
	}
	return cols
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// Create inserts a new session and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Randomization) (*domain.Randomization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.UserID, s.ShowAnswer, s.Status, s.CurrentQuestionID, s.CreatedAt, s.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanRandomization(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "randomization", s.ID)
	}
	return created, nil
}

// GetByID returns a session by primary key with user_id filter.
// Returns domain.ErrNotFound if the row does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Randomization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": sessionID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	s, err := scanRandomization(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "randomization", sessionID)
	}
	return s, nil
}

// GetLatestByStatus returns the user's most recently created session with the
// given status. Returns domain.ErrNotFound when there is none.
func (r *Repo) GetLatestByStatus(ctx context.Context, userID uuid.UUID, status string) (*domain.Randomization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": status}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	s, err := scanRandomization(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "randomization", userID)
	}
	return s, nil
}

// List returns the user's sessions newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Randomization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list randomizations: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.Randomization{}
	for rows.Next() {
		s, err := scanRandomization(rows)
		if err != nil {
			return nil, fmt.Errorf("scan randomization: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list randomizations: %w", err)
	}

	return sessions, nil
}

// Update writes show_answer, status, current_question_id, and updated_at for
// an owned session and returns the updated row.
func (r *Repo) Update(ctx context.Context, s *domain.Randomization) (*domain.Randomization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("show_answer", s.ShowAnswer).
		Set("status", s.Status).
		Set("current_question_id", s.CurrentQuestionID).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID, "user_id": s.UserID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanRandomization(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "randomization", s.ID)
	}
	return updated, nil
}

// Delete removes an owned session permanently. Bookkeeping rows are removed by
// the caller inside the same transaction.
func (r *Repo) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": sessionID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "randomization", sessionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("randomization %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// DeleteBookkeeping removes all bookkeeping rows of a session across the three
// subordinate tables. Runs inside the session-delete transaction.
func (r *Repo) DeleteBookkeeping(ctx context.Context, userID, sessionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	for _, t := range []string{selectedTable, usedTable, postponedTable} {
		sql, args, err := postgres.Builder().
			Delete(t).
			Where(squirrel.Eq{"randomization_id": sessionID, "user_id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete %s: %w", t, err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, t, sessionID)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Selected categories
// ---------------------------------------------------------------------------

// AddSelectedCategories inserts all rows with a single multi-row INSERT;
// duplicates within the session are ignored.
func (r *Repo) AddSelectedCategories(ctx context.Context, rows []*domain.SelectedCategory) error {
	if len(rows) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Insert(selectedTable).
		Columns(bkColumns("category_id")...)
	for _, sc := range rows {
		builder = builder.Values(sc.ID, sc.RandomizationID, sc.UserID, sc.CategoryID, sc.CreatedAt)
	}

	sql, args, err := builder.
		Suffix("ON CONFLICT (randomization_id, category_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert selected categories: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "selected_category", rows[0].RandomizationID)
	}
	return nil
}

// ListSelectedCategories returns the session's selected categories in
// insertion order.
func (r *Repo) ListSelectedCategories(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.SelectedCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(bkColumns("category_id")...).
		From(selectedTable).
		Where(squirrel.Eq{"randomization_id": sessionID, "user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list selected categories: %w", err)
	}
	defer rows.Close()

	out := []*domain.SelectedCategory{}
	for rows.Next() {
		var sc domain.SelectedCategory
		if err := rows.Scan(&sc.ID, &sc.RandomizationID, &sc.UserID, &sc.CategoryID, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan selected category: %w", err)
		}
		out = append(out, &sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list selected categories: %w", err)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Used questions
// ---------------------------------------------------------------------------

// AddUsedQuestion records a shown question; a repeat within the session is
// ignored.
func (r *Repo) AddUsedQuestion(ctx context.Context, uq *domain.UsedQuestion) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(usedTable).
		Columns(bkColumns("question_id")...).
		Values(uq.ID, uq.RandomizationID, uq.UserID, uq.QuestionID, uq.CreatedAt).
		Suffix("ON CONFLICT (randomization_id, question_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert used question: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "used_question", uq.QuestionID)
	}
	return nil
}

// ListUsedQuestions returns the session's used questions in insertion order.
func (r *Repo) ListUsedQuestions(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.UsedQuestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(bkColumns("question_id")...).
		From(usedTable).
		Where(squirrel.Eq{"randomization_id": sessionID, "user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list used questions: %w", err)
	}
	defer rows.Close()

	out := []*domain.UsedQuestion{}
	for rows.Next() {
		var uq domain.UsedQuestion
		if err := rows.Scan(&uq.ID, &uq.RandomizationID, &uq.UserID, &uq.QuestionID, &uq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan used question: %w", err)
		}
		out = append(out, &uq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list used questions: %w", err)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Postponed questions
// ---------------------------------------------------------------------------

// AddPostponedQuestion records a deferred question; a repeat within the
// session is ignored.
func (r *Repo) AddPostponedQuestion(ctx context.Context, pq *domain.PostponedQuestion) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(postponedTable).
		Columns(bkColumns("question_id")...).
		Values(pq.ID, pq.RandomizationID, pq.UserID, pq.QuestionID, pq.CreatedAt).
		Suffix("ON CONFLICT (randomization_id, question_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert postponed question: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "postponed_question", pq.QuestionID)
	}
	return nil
}

// ListPostponedQuestions returns the session's postponed questions in
// insertion order.
func (r *Repo) ListPostponedQuestions(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.PostponedQuestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(bkColumns("question_id")...).
		From(postponedTable).
		Where(squirrel.Eq{"randomization_id": sessionID, "user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list postponed questions: %w", err)
	}
	defer rows.Close()

	out := []*domain.PostponedQuestion{}
	for rows.Next() {
		var pq domain.PostponedQuestion
		if err := rows.Scan(&pq.ID, &pq.RandomizationID, &pq.UserID, &pq.QuestionID, &pq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan postponed question: %w", err)
		}
		out = append(out, &pq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list postponed questions: %w", err)
	}

	return out, nil
}

// RemovePostponedQuestion drops a single postponed row, e.g. once the caller
// re-serves the question. Returns domain.ErrNotFound if no row matched.
func (r *Repo) RemovePostponedQuestion(ctx context.Context, userID, sessionID, questionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(postponedTable).
		Where(squirrel.Eq{
			"randomization_id": sessionID,
			"user_id":          userID,
			"question_id":      questionID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "postponed_question", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("postponed question %s: %w", questionID, domain.ErrNotFound)
	}
	return nil
}
