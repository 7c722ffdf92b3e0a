package qualification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// DeleteQualification soft-deletes a qualification the authenticated user
// owns, then publishes QualificationDeleted so questions can drop their
// dangling references.
//
// The delete commits before the event fires; a failing subscriber surfaces an
// error but does not restore the qualification.
func (s *Service) DeleteQualification(ctx context.Context, input DeleteQualificationInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.qualifications.SoftDelete(txCtx, userID, input.QualificationID); delErr != nil {
			return fmt.Errorf("delete qualification: %w", delErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeQualification,
			EntityID:   &input.QualificationID,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "qualification deleted",
		slog.String("user_id", userID.String()),
		slog.String("qualification_id", input.QualificationID.String()),
	)

	if err := s.events.Publish(ctx, domain.QualificationDeleted{
		QualificationID: input.QualificationID,
		UserID:          userID,
	}); err != nil {
		return fmt.Errorf("cleanup after qualification delete: %w", err)
	}

	return nil
}
