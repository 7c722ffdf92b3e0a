package category_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/category"
	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/testhelper"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

func newRepo(t *testing.T) (*category.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return category.New(pool), pool
}

func newCategory(userID uuid.UUID, name string) *domain.Category {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	created, err := repo.Create(ctx, newCategory(user.ID, "History"))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.Name != "History" {
		t.Errorf("Name mismatch: got %q, want %q", created.Name, "History")
	}
	if !created.IsActive {
		t.Error("expected created category to be active")
	}

	got, err := repo.GetByID(ctx, user.ID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.ID != created.ID || got.Name != created.Name {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, created)
	}
}

func TestRepo_GetByID_ForeignUserIsNotFound(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	created, err := repo.Create(ctx, newCategory(owner.ID, "Private"))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	_, err = repo.GetByID(ctx, other.ID, created.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestRepo_List_ActiveOnlyExcludesSoftDeleted(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	kept, err := repo.Create(ctx, newCategory(user.ID, "Kept"))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	deleted, err := repo.Create(ctx, newCategory(user.ID, "Deleted"))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if err := repo.SoftDelete(ctx, user.ID, deleted.ID); err != nil {
		t.Fatalf("SoftDelete: unexpected error: %v", err)
	}

	active, err := repo.List(ctx, user.ID, true)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(active) != 1 || active[0].ID != kept.ID {
		t.Errorf("active list: got %d entries, want only %s", len(active), kept.ID)
	}

	all, err := repo.List(ctx, user.ID, false)
	if err != nil {
		t.Fatalf("List all: unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("full list: got %d entries, want 2", len(all))
	}
}

func TestRepo_SoftDelete_Twice(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	created, err := repo.Create(ctx, newCategory(user.ID, "Ephemeral"))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if err := repo.SoftDelete(ctx, user.ID, created.ID); err != nil {
		t.Fatalf("first SoftDelete: unexpected error: %v", err)
	}
	err = repo.SoftDelete(ctx, user.ID, created.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second SoftDelete: got %v, want ErrNotFound", err)
	}
}

func TestRepo_Update_Rename(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	created, err := repo.Create(ctx, newCategory(user.ID, "Old"))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	created.Name = "New"
	created.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}
	if updated.Name != "New" {
		t.Errorf("Name: got %q, want %q", updated.Name, "New")
	}
}

func TestRepo_Count_CountsActiveOnly(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	a, err := repo.Create(ctx, newCategory(user.ID, "A"))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, newCategory(user.ID, "B")); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if err := repo.SoftDelete(ctx, user.ID, a.ID); err != nil {
		t.Fatalf("SoftDelete: unexpected error: %v", err)
	}

	count, err := repo.Count(ctx, user.ID)
	if err != nil {
		t.Fatalf("Count: unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("Count: got %d, want 1", count)
	}
}
