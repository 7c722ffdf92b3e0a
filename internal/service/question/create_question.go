package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// resolveRefs loads the referenced category and qualification, verifying the
// user owns them, and returns the name snapshots to store on the question.
// A reference the user does not own reads as not found.
func (s *Service) resolveRefs(
	ctx context.Context,
	userID uuid.UUID,
	categoryID, qualificationID *uuid.UUID,
) (categoryName, qualificationName *string, err error) {
	if categoryID != nil {
		category, err := s.categories.GetByID(ctx, userID, *categoryID)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve category: %w", err)
		}
		categoryName = &category.Name
	}
	if qualificationID != nil {
		qualification, err := s.qualifications.GetByID(ctx, userID, *qualificationID)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve qualification: %w", err)
		}
		qualificationName = &qualification.Name
	}
	return categoryName, qualificationName, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.TrimSpace(tag))
	}
	return out
}

// CreateQuestion creates a new question for the authenticated user. Category
// and qualification names are snapshotted at write time.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	count, err := s.questions.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	if count >= s.cfg.MaxQuestionsPerUser {
		return nil, domain.NewValidationError("questions", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxQuestionsPerUser))
	}

	categoryName, qualificationName, err := s.resolveRefs(ctx, userID, input.CategoryID, input.QualificationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	questionText := strings.TrimSpace(input.QuestionText)

	var question *domain.Question
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		question, createErr = s.questions.Create(txCtx, &domain.Question{
			ID:                uuid.New(),
			UserID:            userID,
			QuestionText:      questionText,
			Answer:            strings.TrimSpace(input.Answer),
			AnswerPL:          input.AnswerPL,
			CategoryID:        input.CategoryID,
			CategoryName:      categoryName,
			QualificationID:   input.QualificationID,
			QualificationName: qualificationName,
			Tags:              normalizeTags(input.Tags),
			IsActive:          true,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if createErr != nil {
			return fmt.Errorf("create question: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeQuestion,
			EntityID:   &question.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"question_text": map[string]any{"new": questionText}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question created",
		slog.String("user_id", userID.String()),
		slog.String("question_id", question.ID.String()),
	)

	return question, nil
}
