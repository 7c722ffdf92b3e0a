package qualification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// UpdateQualification renames a qualification the authenticated user owns.
// Question snapshots of the old name are left as they were.
func (s *Service) UpdateQualification(ctx context.Context, input UpdateQualificationInput) (*domain.Qualification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	qualification, err := s.qualifications.GetByID(ctx, userID, input.QualificationID)
	if err != nil {
		return nil, fmt.Errorf("get qualification: %w", err)
	}

	oldName := qualification.Name
	qualification.Name = strings.TrimSpace(input.Name)
	qualification.UpdatedAt = time.Now().UTC()

	var updated *domain.Qualification
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.qualifications.Update(txCtx, qualification)
		if updateErr != nil {
			return fmt.Errorf("update qualification: %w", updateErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeQualification,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"name": map[string]any{"old": oldName, "new": updated.Name}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "qualification updated",
		slog.String("user_id", userID.String()),
		slog.String("qualification_id", updated.ID.String()),
	)

	return updated, nil
}
