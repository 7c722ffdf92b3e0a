// Package qualification implements the Qualification repository using PostgreSQL.
package qualification

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

const table = "qualifications"

var columns = []string{"id", "user_id", "name", "is_active", "created_at", "updated_at"}

// Repo provides qualification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new qualification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanQualification(row pgx.Row) (*domain.Qualification, error) {
	var q domain.Qualification
	err := row.Scan(&q.ID, &q.UserID, &q.Name, &q.IsActive, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Create inserts a new qualification and returns the persisted row.
func (r *Repo) Create(ctx context.Context, qual *domain.Qualification) (*domain.Qualification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(qual.ID, qual.UserID, qual.Name, qual.IsActive, qual.CreatedAt, qual.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanQualification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "qualification", qual.ID)
	}
	return created, nil
}

// CreateBatch inserts all qualifications with a single multi-row INSERT.
// The statement is atomic at the store level: either every row is written or
// none is.
func (r *Repo) CreateBatch(ctx context.Context, quals []*domain.Qualification) ([]*domain.Qualification, error) {
	if len(quals) == 0 {
		return []*domain.Qualification{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Insert(table).
		Columns(columns...)
	for _, qual := range quals {
		builder = builder.Values(qual.ID, qual.UserID, qual.Name, qual.IsActive, qual.CreatedAt, qual.UpdatedAt)
	}

	sql, args, err := builder.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch insert: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "qualification", "batch")
	}
	defer rows.Close()

	created := make([]*domain.Qualification, 0, len(quals))
	for rows.Next() {
		qual, err := scanQualification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan qualification: %w", err)
		}
		created = append(created, qual)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "qualification", "batch")
	}

	return created, nil
}

// GetByID returns a qualification by primary key with user_id filter.
// Returns domain.ErrNotFound if the row does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, qualID uuid.UUID) (*domain.Qualification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": qualID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	qual, err := scanQualification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "qualification", qualID)
	}
	return qual, nil
}

// List returns the user's qualifications ordered by name. With activeOnly set,
// soft-deleted rows are excluded.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Qualification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list qualifications: %w", err)
	}
	defer rows.Close()

	quals := []*domain.Qualification{}
	for rows.Next() {
		qual, err := scanQualification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan qualification: %w", err)
		}
		quals = append(quals, qual)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list qualifications: %w", err)
	}

	return quals, nil
}

// Update writes name, is_active, and updated_at for an owned qualification and
// returns the updated row.
func (r *Repo) Update(ctx context.Context, qual *domain.Qualification) (*domain.Qualification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", qual.Name).
		Set("is_active", qual.IsActive).
		Set("updated_at", qual.UpdatedAt).
		Where(squirrel.Eq{"id": qual.ID, "user_id": qual.UserID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanQualification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "qualification", qual.ID)
	}
	return updated, nil
}

// SoftDelete marks an owned qualification inactive. Returns domain.ErrNotFound
// if no active row matched.
func (r *Repo) SoftDelete(ctx context.Context, userID, qualID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": qualID, "user_id": userID, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "qualification", qualID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("qualification %s: %w", qualID, domain.ErrNotFound)
	}
	return nil
}
