package randomization

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// ownedSession verifies the session exists and belongs to the user.
func (s *Service) ownedSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := s.sessions.GetByID(ctx, userID, sessionID); err != nil {
		return fmt.Errorf("get randomization: %w", err)
	}
	return nil
}

// AddSelectedCategories puts categories in scope for a session. Every
// category must exist and belong to the user; already-selected categories are
// skipped silently.
func (s *Service) AddSelectedCategories(ctx context.Context, input AddSelectedCategoriesInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.ownedSession(ctx, userID, input.RandomizationID); err != nil {
		return err
	}
	for _, categoryID := range input.CategoryIDs {
		if _, err := s.categories.GetByID(ctx, userID, categoryID); err != nil {
			return fmt.Errorf("resolve category %s: %w", categoryID, err)
		}
	}

	now := time.Now().UTC()
	rows := make([]*domain.SelectedCategory, 0, len(input.CategoryIDs))
	for _, categoryID := range input.CategoryIDs {
		rows = append(rows, &domain.SelectedCategory{
			ID:              uuid.New(),
			RandomizationID: input.RandomizationID,
			UserID:          userID,
			CategoryID:      categoryID,
			CreatedAt:       now,
		})
	}

	if err := s.sessions.AddSelectedCategories(ctx, rows); err != nil {
		return fmt.Errorf("add selected categories: %w", err)
	}

	s.log.InfoContext(ctx, "categories selected",
		slog.String("user_id", userID.String()),
		slog.String("randomization_id", input.RandomizationID.String()),
		slog.Int("count", len(rows)),
	)

	return nil
}

// ListSelectedCategories returns the categories in scope for a session.
func (s *Service) ListSelectedCategories(ctx context.Context, input ListSelectedCategoriesInput) ([]*domain.SelectedCategory, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.ownedSession(ctx, userID, input.RandomizationID); err != nil {
		return nil, err
	}

	rows, err := s.sessions.ListSelectedCategories(ctx, userID, input.RandomizationID)
	if err != nil {
		return nil, fmt.Errorf("list selected categories: %w", err)
	}

	return rows, nil
}

// AddUsedQuestion records a question as shown in a session. Recording the
// same question twice is a conflict.
func (s *Service) AddUsedQuestion(ctx context.Context, input AddUsedQuestionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.ownedSession(ctx, userID, input.RandomizationID); err != nil {
		return err
	}
	if _, err := s.questions.GetByID(ctx, userID, input.QuestionID); err != nil {
		return fmt.Errorf("resolve question: %w", err)
	}

	err := s.sessions.AddUsedQuestion(ctx, &domain.UsedQuestion{
		ID:              uuid.New(),
		RandomizationID: input.RandomizationID,
		UserID:          userID,
		QuestionID:      input.QuestionID,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("add used question: %w", err)
	}

	return nil
}

// ListUsedQuestions returns the questions already shown in a session.
func (s *Service) ListUsedQuestions(ctx context.Context, input ListUsedQuestionsInput) ([]*domain.UsedQuestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.ownedSession(ctx, userID, input.RandomizationID); err != nil {
		return nil, err
	}

	rows, err := s.sessions.ListUsedQuestions(ctx, userID, input.RandomizationID)
	if err != nil {
		return nil, fmt.Errorf("list used questions: %w", err)
	}

	return rows, nil
}

// AddPostponedQuestion defers a question within a session. Postponing the
// same question twice is a conflict.
func (s *Service) AddPostponedQuestion(ctx context.Context, input AddPostponedQuestionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.ownedSession(ctx, userID, input.RandomizationID); err != nil {
		return err
	}
	if _, err := s.questions.GetByID(ctx, userID, input.QuestionID); err != nil {
		return fmt.Errorf("resolve question: %w", err)
	}

	err := s.sessions.AddPostponedQuestion(ctx, &domain.PostponedQuestion{
		ID:              uuid.New(),
		RandomizationID: input.RandomizationID,
		UserID:          userID,
		QuestionID:      input.QuestionID,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("add postponed question: %w", err)
	}

	return nil
}

// ListPostponedQuestions returns the questions deferred within a session.
func (s *Service) ListPostponedQuestions(ctx context.Context, input ListPostponedQuestionsInput) ([]*domain.PostponedQuestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.ownedSession(ctx, userID, input.RandomizationID); err != nil {
		return nil, err
	}

	rows, err := s.sessions.ListPostponedQuestions(ctx, userID, input.RandomizationID)
	if err != nil {
		return nil, fmt.Errorf("list postponed questions: %w", err)
	}

	return rows, nil
}

// RemovePostponedQuestion takes a question back off the session's postponed
// set, typically right before it is shown again.
func (s *Service) RemovePostponedQuestion(ctx context.Context, input RemovePostponedQuestionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.RemovePostponedQuestion(ctx, userID, input.RandomizationID, input.QuestionID); err != nil {
		return fmt.Errorf("remove postponed question: %w", err)
	}

	return nil
}
