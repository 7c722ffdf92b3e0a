package qualification

import (
	"context"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// Register binds qualification operations to the dispatcher.
func Register(d *dispatch.Dispatcher, svc *Service) {
	dispatch.MustRegister(d, func(ctx context.Context, cmd CreateQualificationInput) (*domain.Qualification, error) {
		return svc.CreateQualification(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd CreateQualificationBatchInput) ([]*domain.Qualification, error) {
		return svc.CreateQualificationBatch(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd GetQualificationInput) (*domain.Qualification, error) {
		return svc.GetQualification(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListQualificationsInput) ([]*domain.Qualification, error) {
		return svc.ListQualifications(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd UpdateQualificationInput) (*domain.Qualification, error) {
		return svc.UpdateQualification(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd DeleteQualificationInput) (struct{}, error) {
		return struct{}{}, svc.DeleteQualification(ctx, cmd)
	})
}
