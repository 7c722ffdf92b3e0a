package randomization

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

type randomizationRepoMock struct {
	CreateFunc            func(ctx context.Context, r *domain.Randomization) (*domain.Randomization, error)
	GetByIDFunc           func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Randomization, error)
	GetLatestByStatusFunc func(ctx context.Context, userID uuid.UUID, status string) (*domain.Randomization, error)
	ListFunc              func(ctx context.Context, userID uuid.UUID) ([]*domain.Randomization, error)
	UpdateFunc            func(ctx context.Context, r *domain.Randomization) (*domain.Randomization, error)
	DeleteFunc            func(ctx context.Context, userID, sessionID uuid.UUID) error
	DeleteBookkeepingFunc func(ctx context.Context, userID, sessionID uuid.UUID) error

	AddSelectedCategoriesFunc   func(ctx context.Context, rows []*domain.SelectedCategory) error
	ListSelectedCategoriesFunc  func(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.SelectedCategory, error)
	AddUsedQuestionFunc         func(ctx context.Context, uq *domain.UsedQuestion) error
	ListUsedQuestionsFunc       func(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.UsedQuestion, error)
	AddPostponedQuestionFunc    func(ctx context.Context, pq *domain.PostponedQuestion) error
	ListPostponedQuestionsFunc  func(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.PostponedQuestion, error)
	RemovePostponedQuestionFunc func(ctx context.Context, userID, sessionID, questionID uuid.UUID) error

	deleteCalls            int
	deleteBookkeepingCalls int
}

func (m *randomizationRepoMock) Create(ctx context.Context, r *domain.Randomization) (*domain.Randomization, error) {
	return m.CreateFunc(ctx, r)
}

func (m *randomizationRepoMock) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Randomization, error) {
	return m.GetByIDFunc(ctx, userID, sessionID)
}

func (m *randomizationRepoMock) GetLatestByStatus(ctx context.Context, userID uuid.UUID, status string) (*domain.Randomization, error) {
	return m.GetLatestByStatusFunc(ctx, userID, status)
}

func (m *randomizationRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Randomization, error) {
	return m.ListFunc(ctx, userID)
}

func (m *randomizationRepoMock) Update(ctx context.Context, r *domain.Randomization) (*domain.Randomization, error) {
	return m.UpdateFunc(ctx, r)
}

func (m *randomizationRepoMock) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	m.deleteCalls++
	return m.DeleteFunc(ctx, userID, sessionID)
}

func (m *randomizationRepoMock) DeleteBookkeeping(ctx context.Context, userID, sessionID uuid.UUID) error {
	m.deleteBookkeepingCalls++
	return m.DeleteBookkeepingFunc(ctx, userID, sessionID)
}

func (m *randomizationRepoMock) AddSelectedCategories(ctx context.Context, rows []*domain.SelectedCategory) error {
	return m.AddSelectedCategoriesFunc(ctx, rows)
}

func (m *randomizationRepoMock) ListSelectedCategories(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.SelectedCategory, error) {
	return m.ListSelectedCategoriesFunc(ctx, userID, sessionID)
}

func (m *randomizationRepoMock) AddUsedQuestion(ctx context.Context, uq *domain.UsedQuestion) error {
	return m.AddUsedQuestionFunc(ctx, uq)
}

func (m *randomizationRepoMock) ListUsedQuestions(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.UsedQuestion, error) {
	return m.ListUsedQuestionsFunc(ctx, userID, sessionID)
}

func (m *randomizationRepoMock) AddPostponedQuestion(ctx context.Context, pq *domain.PostponedQuestion) error {
	return m.AddPostponedQuestionFunc(ctx, pq)
}

func (m *randomizationRepoMock) ListPostponedQuestions(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.PostponedQuestion, error) {
	return m.ListPostponedQuestionsFunc(ctx, userID, sessionID)
}

func (m *randomizationRepoMock) RemovePostponedQuestion(ctx context.Context, userID, sessionID, questionID uuid.UUID) error {
	return m.RemovePostponedQuestionFunc(ctx, userID, sessionID, questionID)
}

type categoryGetterMock struct {
	GetByIDFunc func(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
}

func (m *categoryGetterMock) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	return m.GetByIDFunc(ctx, userID, categoryID)
}

type questionGetterMock struct {
	GetByIDFunc func(ctx context.Context, userID, questionID uuid.UUID) (*domain.Question, error)
}

func (m *questionGetterMock) GetByID(ctx context.Context, userID, questionID uuid.UUID) (*domain.Question, error) {
	return m.GetByIDFunc(ctx, userID, questionID)
}

type txManagerMock struct {
	runs int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runs++
	return fn(ctx)
}

func newTestService(repo *randomizationRepoMock, cats *categoryGetterMock, questions *questionGetterMock) *Service {
	if cats == nil {
		cats = &categoryGetterMock{}
	}
	if questions == nil {
		questions = &questionGetterMock{}
	}
	return NewService(slog.Default(), repo, cats, questions, &txManagerMock{})
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func TestCreateRandomization_StartsOngoing(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &randomizationRepoMock{
		CreateFunc: func(ctx context.Context, r *domain.Randomization) (*domain.Randomization, error) {
			return r, nil
		},
	}
	svc := newTestService(repo, nil, nil)

	got, err := svc.CreateRandomization(userCtx(userID), CreateRandomizationInput{ShowAnswer: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.RandomizationStatusOngoing {
		t.Errorf("status: got %q, want %q", got.Status, domain.RandomizationStatusOngoing)
	}
	if !got.ShowAnswer {
		t.Error("show answer flag must carry over")
	}
	if got.CurrentQuestionID != nil {
		t.Error("new session has no current question")
	}
}

func TestGetCurrentRandomization_DefaultsToOngoing(t *testing.T) {
	t.Parallel()

	var gotStatus string
	repo := &randomizationRepoMock{
		GetLatestByStatusFunc: func(ctx context.Context, uid uuid.UUID, status string) (*domain.Randomization, error) {
			gotStatus = status
			return &domain.Randomization{ID: uuid.New(), Status: status}, nil
		},
	}
	svc := newTestService(repo, nil, nil)

	if _, err := svc.GetCurrentRandomization(userCtx(uuid.New()), GetCurrentRandomizationInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStatus != domain.RandomizationStatusOngoing {
		t.Errorf("status: got %q, want %q", gotStatus, domain.RandomizationStatusOngoing)
	}
}

func TestUpdateRandomization_PartialUpdate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sessionID := uuid.New()

	repo := &randomizationRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, sid uuid.UUID) (*domain.Randomization, error) {
			return &domain.Randomization{
				ID: sessionID, UserID: userID,
				ShowAnswer: true, Status: domain.RandomizationStatusOngoing,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, r *domain.Randomization) (*domain.Randomization, error) {
			return r, nil
		},
	}
	svc := newTestService(repo, nil, nil)

	done := "Done"
	got, err := svc.UpdateRandomization(userCtx(userID), UpdateRandomizationInput{
		RandomizationID: sessionID,
		Status:          &done,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != "Done" {
		t.Errorf("status: got %q, want Done", got.Status)
	}
	if !got.ShowAnswer {
		t.Error("unset fields must keep their stored values")
	}
}

func TestUpdateRandomization_ForeignCurrentQuestionRejected(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sessionID := uuid.New()
	questionID := uuid.New()

	repo := &randomizationRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, sid uuid.UUID) (*domain.Randomization, error) {
			return &domain.Randomization{ID: sessionID, UserID: userID, Status: domain.RandomizationStatusOngoing}, nil
		},
	}
	questions := &questionGetterMock{
		GetByIDFunc: func(ctx context.Context, uid, qid uuid.UUID) (*domain.Question, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo, nil, questions)

	_, err := svc.UpdateRandomization(userCtx(userID), UpdateRandomizationInput{
		RandomizationID:   sessionID,
		CurrentQuestionID: &questionID,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteRandomization_BookkeepingGoesFirst(t *testing.T) {
	t.Parallel()

	repo := &randomizationRepoMock{
		DeleteBookkeepingFunc: func(ctx context.Context, uid, sid uuid.UUID) error { return nil },
		DeleteFunc:            func(ctx context.Context, uid, sid uuid.UUID) error { return nil },
	}
	svc := newTestService(repo, nil, nil)

	if err := svc.DeleteRandomization(userCtx(uuid.New()), DeleteRandomizationInput{RandomizationID: uuid.New()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deleteBookkeepingCalls != 1 || repo.deleteCalls != 1 {
		t.Errorf("bookkeeping=%d delete=%d, want 1 and 1", repo.deleteBookkeepingCalls, repo.deleteCalls)
	}
}

func TestAddSelectedCategories_ForeignCategoryRejected(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sessionID := uuid.New()

	repo := &randomizationRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, sid uuid.UUID) (*domain.Randomization, error) {
			return &domain.Randomization{ID: sessionID, UserID: userID}, nil
		},
		AddSelectedCategoriesFunc: func(ctx context.Context, rows []*domain.SelectedCategory) error {
			t.Fatal("no rows may be written when a category fails to resolve")
			return nil
		},
	}
	cats := &categoryGetterMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (*domain.Category, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo, cats, nil)

	err := svc.AddSelectedCategories(userCtx(userID), AddSelectedCategoriesInput{
		RandomizationID: sessionID,
		CategoryIDs:     []uuid.UUID{uuid.New()},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestAddUsedQuestion_DuplicateSurfacesConflict(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sessionID := uuid.New()

	repo := &randomizationRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, sid uuid.UUID) (*domain.Randomization, error) {
			return &domain.Randomization{ID: sessionID, UserID: userID}, nil
		},
		AddUsedQuestionFunc: func(ctx context.Context, uq *domain.UsedQuestion) error {
			return domain.ErrAlreadyExists
		},
	}
	questions := &questionGetterMock{
		GetByIDFunc: func(ctx context.Context, uid, qid uuid.UUID) (*domain.Question, error) {
			return &domain.Question{ID: qid, UserID: uid}, nil
		},
	}
	svc := newTestService(repo, nil, questions)

	err := svc.AddUsedQuestion(userCtx(userID), AddUsedQuestionInput{
		RandomizationID: sessionID,
		QuestionID:      uuid.New(),
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("got %v, want ErrAlreadyExists", err)
	}
}

func TestRemovePostponedQuestion_MissingRowIsNotFound(t *testing.T) {
	t.Parallel()

	repo := &randomizationRepoMock{
		RemovePostponedQuestionFunc: func(ctx context.Context, uid, sid, qid uuid.UUID) error {
			return domain.ErrNotFound
		},
	}
	svc := newTestService(repo, nil, nil)

	err := svc.RemovePostponedQuestion(userCtx(uuid.New()), RemovePostponedQuestionInput{
		RandomizationID: uuid.New(),
		QuestionID:      uuid.New(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
