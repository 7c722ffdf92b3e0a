package category

import (
	"context"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// Register binds every category command and query to the dispatcher.
func Register(d *dispatch.Dispatcher, svc *Service) {
	dispatch.MustRegister(d, func(ctx context.Context, cmd CreateCategoryInput) (*domain.Category, error) {
		return svc.CreateCategory(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd GetCategoryInput) (*domain.Category, error) {
		return svc.GetCategory(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListCategoriesInput) ([]*domain.Category, error) {
		return svc.ListCategories(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd UpdateCategoryInput) (*domain.Category, error) {
		return svc.UpdateCategory(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd DeleteCategoryInput) (struct{}, error) {
		return struct{}{}, svc.DeleteCategory(ctx, cmd)
	})
}
