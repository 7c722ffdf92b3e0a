// Package message implements the Message repository using PostgreSQL.
// Messages are append-only; the only delete path is cascading removal when
// the parent conversation is deleted.
package message

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

const table = "messages"

var columns = []string{"id", "conversation_id", "user_id", "role", "content", "created_at"}

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	var role string
	err := row.Scan(&m.ID, &m.ConversationID, &m.UserID, &role, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Role = domain.MessageRole(role)
	return &m, nil
}

// Create appends a message and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.ConversationID, m.UserID, string(m.Role), m.Content, m.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanMessage(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "message", m.ID)
	}
	return created, nil
}

// ListByConversation returns the conversation's messages in timestamp order.
// Ownership of the conversation is the caller's concern; the user_id filter
// here is a second fence.
func (r *Repo) ListByConversation(ctx context.Context, userID, conversationID uuid.UUID) ([]*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"conversation_id": conversationID, "user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

// DeleteByConversation removes every message of a conversation. Runs inside
// the same transaction as the conversation delete.
func (r *Repo) DeleteByConversation(ctx context.Context, userID, conversationID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"conversation_id": conversationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "message", conversationID)
	}
	return int(tag.RowsAffected()), nil
}
