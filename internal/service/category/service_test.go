package category

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/config"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// categoryRepoMock is a hand-rolled mock of categoryRepo.
type categoryRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetByIDFunc    func(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	ListFunc       func(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Category, error)
	CountFunc      func(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateFunc     func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	SoftDeleteFunc func(ctx context.Context, userID, categoryID uuid.UUID) error

	softDeleteCalls int
}

func (m *categoryRepoMock) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	return m.CreateFunc(ctx, c)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	return m.GetByIDFunc(ctx, userID, categoryID)
}

func (m *categoryRepoMock) List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Category, error) {
	return m.ListFunc(ctx, userID, activeOnly)
}

func (m *categoryRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.CountFunc(ctx, userID)
}

func (m *categoryRepoMock) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	return m.UpdateFunc(ctx, c)
}

func (m *categoryRepoMock) SoftDelete(ctx context.Context, userID, categoryID uuid.UUID) error {
	m.softDeleteCalls++
	return m.SoftDeleteFunc(ctx, userID, categoryID)
}

// publisherMock records published events.
type publisherMock struct {
	PublishFunc func(ctx context.Context, event any) error
	events      []any
}

func (m *publisherMock) Publish(ctx context.Context, event any) error {
	m.events = append(m.events, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	return nil
}

// auditMock records audit log calls.
type auditMock struct {
	LogFunc func(ctx context.Context, rec domain.AuditRecord) error
	records []domain.AuditRecord
}

func (m *auditMock) Log(ctx context.Context, rec domain.AuditRecord) error {
	m.records = append(m.records, rec)
	if m.LogFunc != nil {
		return m.LogFunc(ctx, rec)
	}
	return nil
}

// txManagerMock runs the callback directly, counting invocations.
type txManagerMock struct {
	runs int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runs++
	return fn(ctx)
}

func testQuizConfig() config.QuizConfig {
	return config.QuizConfig{
		MaxCategoriesPerUser:  200,
		MaxQuestionsPerUser:   10000,
		MaxQualificationBatch: 100,
	}
}

func newTestService(repo *categoryRepoMock, pub *publisherMock) *Service {
	return NewService(slog.Default(), repo, pub, &auditMock{}, &txManagerMock{}, testQuizConfig())
}

func newTestServiceWithAudit(repo *categoryRepoMock, pub *publisherMock, audit *auditMock, tx *txManagerMock) *Service {
	return NewService(slog.Default(), repo, pub, audit, tx, testQuizConfig())
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func TestCreateCategory_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &categoryRepoMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID) (int, error) { return 3, nil },
		CreateFunc: func(ctx context.Context, c *domain.Category) (*domain.Category, error) {
			return c, nil
		},
	}
	svc := newTestService(repo, &publisherMock{})

	got, err := svc.CreateCategory(userCtx(userID), CreateCategoryInput{Name: "  History  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Name != "History" {
		t.Errorf("name: got %q, want %q", got.Name, "History")
	}
	if got.UserID != userID {
		t.Errorf("user ID: got %v, want %v", got.UserID, userID)
	}
	if !got.IsActive {
		t.Error("new category must be active")
	}
	if got.ID == uuid.Nil {
		t.Error("ID must be assigned")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestCreateCategory_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&categoryRepoMock{}, &publisherMock{})

	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "History"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestCreateCategory_LimitReached(t *testing.T) {
	t.Parallel()

	repo := &categoryRepoMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID) (int, error) { return 200, nil },
	}
	svc := newTestService(repo, &publisherMock{})

	_, err := svc.CreateCategory(userCtx(uuid.New()), CreateCategoryInput{Name: "History"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestGetCategory_RepoMissReadsAsNotFound(t *testing.T) {
	t.Parallel()

	repo := &categoryRepoMock{
		GetByIDFunc: func(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo, &publisherMock{})

	_, err := svc.GetCategory(userCtx(uuid.New()), GetCategoryInput{CategoryID: uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateCategory_RefreshesUpdatedAt(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	categoryID := uuid.New()
	old := time.Now().Add(-time.Hour)

	repo := &categoryRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (*domain.Category, error) {
			return &domain.Category{
				ID: categoryID, UserID: userID, Name: "Old",
				IsActive: true, CreatedAt: old, UpdatedAt: old,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.Category) (*domain.Category, error) {
			return c, nil
		},
	}
	svc := newTestService(repo, &publisherMock{})

	got, err := svc.UpdateCategory(userCtx(userID), UpdateCategoryInput{CategoryID: categoryID, Name: "New"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "New" {
		t.Errorf("name: got %q, want %q", got.Name, "New")
	}
	if !got.UpdatedAt.After(old) {
		t.Error("UpdatedAt must be refreshed")
	}
}

func TestCreateCategory_WritesAuditRecordInTx(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &categoryRepoMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID) (int, error) { return 0, nil },
		CreateFunc: func(ctx context.Context, c *domain.Category) (*domain.Category, error) {
			return c, nil
		},
	}
	audit := &auditMock{}
	tx := &txManagerMock{}
	svc := newTestServiceWithAudit(repo, &publisherMock{}, audit, tx)

	got, err := svc.CreateCategory(userCtx(userID), CreateCategoryInput{Name: "History"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.runs != 1 {
		t.Errorf("tx runs: got %d, want 1", tx.runs)
	}
	if len(audit.records) != 1 {
		t.Fatalf("audit records: got %d, want 1", len(audit.records))
	}
	rec := audit.records[0]
	if rec.EntityType != domain.EntityTypeCategory || rec.Action != domain.AuditActionCreate {
		t.Errorf("audit record: got %s/%s", rec.EntityType, rec.Action)
	}
	if rec.EntityID == nil || *rec.EntityID != got.ID {
		t.Errorf("audit entity ID: got %v, want %s", rec.EntityID, got.ID)
	}
	if rec.UserID != userID {
		t.Errorf("audit user ID: got %s, want %s", rec.UserID, userID)
	}
}

func TestCreateCategory_AuditFailureFailsCreate(t *testing.T) {
	t.Parallel()

	boom := errors.New("audit insert failed")
	repo := &categoryRepoMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID) (int, error) { return 0, nil },
		CreateFunc: func(ctx context.Context, c *domain.Category) (*domain.Category, error) {
			return c, nil
		},
	}
	audit := &auditMock{
		LogFunc: func(ctx context.Context, rec domain.AuditRecord) error { return boom },
	}
	svc := newTestServiceWithAudit(repo, &publisherMock{}, audit, &txManagerMock{})

	_, err := svc.CreateCategory(userCtx(uuid.New()), CreateCategoryInput{Name: "History"})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want audit error", err)
	}
}

func TestUpdateCategory_AuditRecordsOldAndNewName(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	categoryID := uuid.New()
	repo := &categoryRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (*domain.Category, error) {
			return &domain.Category{ID: categoryID, UserID: userID, Name: "Old", IsActive: true}, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.Category) (*domain.Category, error) {
			return c, nil
		},
	}
	audit := &auditMock{}
	svc := newTestServiceWithAudit(repo, &publisherMock{}, audit, &txManagerMock{})

	if _, err := svc.UpdateCategory(userCtx(userID), UpdateCategoryInput{CategoryID: categoryID, Name: "New"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audit.records) != 1 {
		t.Fatalf("audit records: got %d, want 1", len(audit.records))
	}
	changes, ok := audit.records[0].Changes["name"].(map[string]any)
	if !ok {
		t.Fatalf("name changes missing: %+v", audit.records[0].Changes)
	}
	if changes["old"] != "Old" || changes["new"] != "New" {
		t.Errorf("changes: got %+v", changes)
	}
}

func TestDeleteCategory_WritesAuditRecord(t *testing.T) {
	t.Parallel()

	categoryID := uuid.New()
	repo := &categoryRepoMock{
		SoftDeleteFunc: func(ctx context.Context, uid, cid uuid.UUID) error { return nil },
	}
	audit := &auditMock{}
	svc := newTestServiceWithAudit(repo, &publisherMock{}, audit, &txManagerMock{})

	if err := svc.DeleteCategory(userCtx(uuid.New()), DeleteCategoryInput{CategoryID: categoryID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audit.records) != 1 {
		t.Fatalf("audit records: got %d, want 1", len(audit.records))
	}
	rec := audit.records[0]
	if rec.Action != domain.AuditActionDelete || rec.EntityID == nil || *rec.EntityID != categoryID {
		t.Errorf("audit record: got %+v", rec)
	}
}

func TestDeleteCategory_PublishesEventAfterDelete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	categoryID := uuid.New()

	repo := &categoryRepoMock{
		SoftDeleteFunc: func(ctx context.Context, uid, cid uuid.UUID) error { return nil },
	}
	pub := &publisherMock{}
	svc := newTestService(repo, pub)

	if err := svc.DeleteCategory(userCtx(userID), DeleteCategoryInput{CategoryID: categoryID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pub.events) != 1 {
		t.Fatalf("published events: got %d, want 1", len(pub.events))
	}
	ev, ok := pub.events[0].(domain.CategoryDeleted)
	if !ok {
		t.Fatalf("event type: got %T, want domain.CategoryDeleted", pub.events[0])
	}
	if ev.CategoryID != categoryID || ev.UserID != userID {
		t.Errorf("event payload: got %+v", ev)
	}
}

func TestDeleteCategory_DeleteFailsNoEvent(t *testing.T) {
	t.Parallel()

	repo := &categoryRepoMock{
		SoftDeleteFunc: func(ctx context.Context, uid, cid uuid.UUID) error {
			return domain.ErrNotFound
		},
	}
	pub := &publisherMock{}
	svc := newTestService(repo, pub)

	err := svc.DeleteCategory(userCtx(uuid.New()), DeleteCategoryInput{CategoryID: uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if len(pub.events) != 0 {
		t.Errorf("no event may fire when the delete fails, got %d", len(pub.events))
	}
}

func TestDeleteCategory_PublishFailureSurfacesButDeleteStands(t *testing.T) {
	t.Parallel()

	boom := errors.New("cleanup failed")
	repo := &categoryRepoMock{
		SoftDeleteFunc: func(ctx context.Context, uid, cid uuid.UUID) error { return nil },
	}
	pub := &publisherMock{
		PublishFunc: func(ctx context.Context, event any) error { return boom },
	}
	svc := newTestService(repo, pub)

	err := svc.DeleteCategory(userCtx(uuid.New()), DeleteCategoryInput{CategoryID: uuid.New()})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want publish error", err)
	}
	if repo.softDeleteCalls != 1 {
		t.Errorf("delete must have run exactly once, got %d", repo.softDeleteCalls)
	}
}
