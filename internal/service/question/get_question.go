package question

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// GetQuestion returns a question the authenticated user owns.
func (s *Service) GetQuestion(ctx context.Context, input GetQuestionInput) (*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	question, err := s.questions.GetByID(ctx, userID, input.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	return question, nil
}

// ListQuestions returns the authenticated user's questions, newest first.
func (s *Service) ListQuestions(ctx context.Context, input ListQuestionsInput) ([]*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	questions, err := s.questions.List(ctx, userID, domain.QuestionFilter{
		CategoryID: input.CategoryID,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}
