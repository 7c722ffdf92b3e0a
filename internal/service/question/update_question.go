package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// UpdateQuestion replaces the mutable fields of a question the authenticated
// user owns. References are re-resolved, so the name snapshots catch up with
// any renames that happened since the last write.
func (s *Service) UpdateQuestion(ctx context.Context, input UpdateQuestionInput) (*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	question, err := s.questions.GetByID(ctx, userID, input.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	categoryName, qualificationName, err := s.resolveRefs(ctx, userID, input.CategoryID, input.QualificationID)
	if err != nil {
		return nil, err
	}

	oldText := question.QuestionText
	question.QuestionText = strings.TrimSpace(input.QuestionText)
	question.Answer = strings.TrimSpace(input.Answer)
	question.AnswerPL = input.AnswerPL
	question.CategoryID = input.CategoryID
	question.CategoryName = categoryName
	question.QualificationID = input.QualificationID
	question.QualificationName = qualificationName
	question.Tags = normalizeTags(input.Tags)
	question.UpdatedAt = time.Now().UTC()

	var updated *domain.Question
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.questions.Update(txCtx, question)
		if updateErr != nil {
			return fmt.Errorf("update question: %w", updateErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeQuestion,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"question_text": map[string]any{"old": oldText, "new": updated.QuestionText}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question updated",
		slog.String("user_id", userID.String()),
		slog.String("question_id", updated.ID.String()),
	)

	return updated, nil
}
