package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// DeleteQuestion soft-deletes a question the authenticated user owns.
func (s *Service) DeleteQuestion(ctx context.Context, input DeleteQuestionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.questions.SoftDelete(txCtx, userID, input.QuestionID); delErr != nil {
			return fmt.Errorf("delete question: %w", delErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeQuestion,
			EntityID:   &input.QuestionID,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("user_id", userID.String()),
		slog.String("question_id", input.QuestionID.String()),
	)

	return nil
}
