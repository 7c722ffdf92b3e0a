package qualification

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// GetQualification returns a qualification the authenticated user owns.
func (s *Service) GetQualification(ctx context.Context, input GetQualificationInput) (*domain.Qualification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	qualification, err := s.qualifications.GetByID(ctx, userID, input.QualificationID)
	if err != nil {
		return nil, fmt.Errorf("get qualification: %w", err)
	}

	return qualification, nil
}

// ListQualifications returns the authenticated user's qualifications.
func (s *Service) ListQualifications(ctx context.Context, input ListQualificationsInput) ([]*domain.Qualification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	qualifications, err := s.qualifications.List(ctx, userID, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("list qualifications: %w", err)
	}

	return qualifications, nil
}
