// Package conversation implements the Conversation repository using PostgreSQL.
package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

const table = "conversations"

var columns = []string{"id", "user_id", "title", "created_at", "updated_at"}

// Repo provides conversation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new conversation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanConversation(row pgx.Row) (*domain.Conversation, error) {
	var c domain.Conversation
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new conversation and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.UserID, c.Title, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanConversation(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "conversation", c.ID)
	}
	return created, nil
}

// GetByID returns a conversation by primary key with user_id filter.
// Returns domain.ErrNotFound if the row does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, conversationID uuid.UUID) (*domain.Conversation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": conversationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	c, err := scanConversation(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "conversation", conversationID)
	}
	return c, nil
}

// List returns the user's conversations, most recently updated first.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Conversation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	conversations := []*domain.Conversation{}
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	return conversations, nil
}

// Touch advances updated_at for an owned conversation. Used when a message is
// appended. Returns domain.ErrNotFound on an ownership miss.
func (r *Repo) Touch(ctx context.Context, userID, conversationID uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": conversationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build touch: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "conversation", conversationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("conversation %s: %w", conversationID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an owned conversation permanently.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, userID, conversationID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": conversationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "conversation", conversationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("conversation %s: %w", conversationID, domain.ErrNotFound)
	}
	return nil
}
