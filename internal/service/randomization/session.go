package randomization

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

// CreateRandomization starts a new review session in the ongoing status.
func (s *Service) CreateRandomization(ctx context.Context, input CreateRandomizationInput) (*domain.Randomization, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	session, err := s.sessions.Create(ctx, &domain.Randomization{
		ID:         uuid.New(),
		UserID:     userID,
		ShowAnswer: input.ShowAnswer,
		Status:     domain.RandomizationStatusOngoing,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create randomization: %w", err)
	}

	s.log.InfoContext(ctx, "randomization created",
		slog.String("user_id", userID.String()),
		slog.String("randomization_id", session.ID.String()),
	)

	return session, nil
}

// GetRandomization returns a session the authenticated user owns.
func (s *Service) GetRandomization(ctx context.Context, input GetRandomizationInput) (*domain.Randomization, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, userID, input.RandomizationID)
	if err != nil {
		return nil, fmt.Errorf("get randomization: %w", err)
	}

	return session, nil
}

// GetCurrentRandomization returns the user's most recent session with the
// given status, defaulting to ongoing.
func (s *Service) GetCurrentRandomization(ctx context.Context, input GetCurrentRandomizationInput) (*domain.Randomization, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = domain.RandomizationStatusOngoing
	}

	session, err := s.sessions.GetLatestByStatus(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("get current randomization: %w", err)
	}

	return session, nil
}

// ListRandomizations returns the authenticated user's sessions, newest first.
func (s *Service) ListRandomizations(ctx context.Context, _ ListRandomizationsInput) ([]*domain.Randomization, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sessions, err := s.sessions.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list randomizations: %w", err)
	}

	return sessions, nil
}

// UpdateRandomization applies the provided fields to a session the
// authenticated user owns. Unset fields keep their stored values.
func (s *Service) UpdateRandomization(ctx context.Context, input UpdateRandomizationInput) (*domain.Randomization, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, userID, input.RandomizationID)
	if err != nil {
		return nil, fmt.Errorf("get randomization: %w", err)
	}

	if input.ShowAnswer != nil {
		session.ShowAnswer = *input.ShowAnswer
	}
	if input.Status != nil {
		session.Status = strings.TrimSpace(*input.Status)
	}
	if input.ClearCurrent {
		session.CurrentQuestionID = nil
	} else if input.CurrentQuestionID != nil {
		// The current question must be one the user owns.
		if _, err := s.questions.GetByID(ctx, userID, *input.CurrentQuestionID); err != nil {
			return nil, fmt.Errorf("resolve current question: %w", err)
		}
		session.CurrentQuestionID = input.CurrentQuestionID
	}
	session.UpdatedAt = time.Now().UTC()

	updated, err := s.sessions.Update(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("update randomization: %w", err)
	}

	s.log.InfoContext(ctx, "randomization updated",
		slog.String("user_id", userID.String()),
		slog.String("randomization_id", updated.ID.String()),
		slog.String("status", updated.Status),
	)

	return updated, nil
}

// DeleteRandomization permanently removes a session together with its
// selected-category, used-question and postponed-question rows. All deletes
// share one transaction.
func (s *Service) DeleteRandomization(ctx context.Context, input DeleteRandomizationInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.sessions.DeleteBookkeeping(ctx, userID, input.RandomizationID); err != nil {
			return fmt.Errorf("delete bookkeeping: %w", err)
		}
		if err := s.sessions.Delete(ctx, userID, input.RandomizationID); err != nil {
			return fmt.Errorf("delete randomization: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "randomization deleted",
		slog.String("user_id", userID.String()),
		slog.String("randomization_id", input.RandomizationID.String()),
	)

	return nil
}
