package question_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/question"
	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/testhelper"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

func newRepo(t *testing.T) (*question.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return question.New(pool), pool
}

func newQuestion(userID uuid.UUID) *domain.Question {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Question{
		ID:           uuid.New(),
		UserID:       userID,
		QuestionText: "What is the capital of France?",
		Answer:       "Paris",
		Tags:         []string{"geography"},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepo_Create_WithCategorySnapshot(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	category := testhelper.SeedCategory(t, pool, user.ID, "Geography")

	q := newQuestion(user.ID)
	q.CategoryID = &category.ID
	q.CategoryName = &category.Name

	created, err := repo.Create(ctx, q)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.CategoryName == nil || *created.CategoryName != "Geography" {
		t.Errorf("CategoryName snapshot: got %v, want Geography", created.CategoryName)
	}

	got, err := repo.GetByID(ctx, user.ID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "geography" {
		t.Errorf("Tags round-trip: got %v", got.Tags)
	}
}

func TestRepo_List_FilterByCategory(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	category := testhelper.SeedCategory(t, pool, user.ID, "History")

	inCategory := newQuestion(user.ID)
	inCategory.CategoryID = &category.ID
	inCategory.CategoryName = &category.Name
	if _, err := repo.Create(ctx, inCategory); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, newQuestion(user.ID)); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.List(ctx, user.ID, domain.QuestionFilter{CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != inCategory.ID {
		t.Errorf("filtered list: got %d entries", len(got))
	}
}

func TestRepo_List_EmptyIsNotNil(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	got, err := repo.List(ctx, user.ID, domain.QuestionFilter{})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no questions, got %d", len(got))
	}
}

func TestRepo_ClearCategoryRefs_LeavesSnapshot(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	category := testhelper.SeedCategory(t, pool, user.ID, "Doomed")

	q := newQuestion(user.ID)
	q.CategoryID = &category.ID
	q.CategoryName = &category.Name
	created, err := repo.Create(ctx, q)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	cleared, err := repo.ClearCategoryRefs(ctx, user.ID, category.ID)
	if err != nil {
		t.Fatalf("ClearCategoryRefs: unexpected error: %v", err)
	}
	if cleared != 1 {
		t.Errorf("cleared: got %d, want 1", cleared)
	}

	got, err := repo.GetByID(ctx, user.ID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.CategoryID != nil {
		t.Error("CategoryID must be cleared")
	}
	if got.CategoryName == nil || *got.CategoryName != "Doomed" {
		t.Errorf("CategoryName snapshot must survive, got %v", got.CategoryName)
	}
}

func TestRepo_ClearCategoryRefs_ScopedToUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	category := testhelper.SeedCategory(t, pool, owner.ID, "Mine")

	q := newQuestion(owner.ID)
	q.CategoryID = &category.ID
	q.CategoryName = &category.Name
	if _, err := repo.Create(ctx, q); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	cleared, err := repo.ClearCategoryRefs(ctx, other.ID, category.ID)
	if err != nil {
		t.Fatalf("ClearCategoryRefs: unexpected error: %v", err)
	}
	if cleared != 0 {
		t.Errorf("cleared: got %d, want 0 for a foreign user", cleared)
	}
}

func TestRepo_SoftDelete_ThenGetByIDStillReads(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	created, err := repo.Create(ctx, newQuestion(user.ID))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if err := repo.SoftDelete(ctx, user.ID, created.ID); err != nil {
		t.Fatalf("SoftDelete: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID, created.ID)
	if err != nil {
		t.Fatalf("GetByID after soft delete: unexpected error: %v", err)
	}
	if got.IsActive {
		t.Error("soft-deleted question must be inactive")
	}

	err = repo.SoftDelete(ctx, user.ID, created.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second SoftDelete: got %v, want ErrNotFound", err)
	}
}
