package randomization

import (
	"context"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// Register binds randomization session operations to the dispatcher.
func Register(d *dispatch.Dispatcher, svc *Service) {
	dispatch.MustRegister(d, func(ctx context.Context, cmd CreateRandomizationInput) (*domain.Randomization, error) {
		return svc.CreateRandomization(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd GetRandomizationInput) (*domain.Randomization, error) {
		return svc.GetRandomization(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd GetCurrentRandomizationInput) (*domain.Randomization, error) {
		return svc.GetCurrentRandomization(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListRandomizationsInput) ([]*domain.Randomization, error) {
		return svc.ListRandomizations(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd UpdateRandomizationInput) (*domain.Randomization, error) {
		return svc.UpdateRandomization(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd DeleteRandomizationInput) (struct{}, error) {
		return struct{}{}, svc.DeleteRandomization(ctx, cmd)
	})

	dispatch.MustRegister(d, func(ctx context.Context, cmd AddSelectedCategoriesInput) (struct{}, error) {
		return struct{}{}, svc.AddSelectedCategories(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListSelectedCategoriesInput) ([]*domain.SelectedCategory, error) {
		return svc.ListSelectedCategories(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd AddUsedQuestionInput) (struct{}, error) {
		return struct{}{}, svc.AddUsedQuestion(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListUsedQuestionsInput) ([]*domain.UsedQuestion, error) {
		return svc.ListUsedQuestions(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd AddPostponedQuestionInput) (struct{}, error) {
		return struct{}{}, svc.AddPostponedQuestion(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListPostponedQuestionsInput) ([]*domain.PostponedQuestion, error) {
		return svc.ListPostponedQuestions(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd RemovePostponedQuestionInput) (struct{}, error) {
		return struct{}{}, svc.RemovePostponedQuestion(ctx, cmd)
	})
}
