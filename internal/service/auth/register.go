package auth

import (
	"context"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// Register binds auth operations to the dispatcher.
func Register(d *dispatch.Dispatcher, svc *Service) {
	dispatch.MustRegister(d, func(ctx context.Context, cmd RegisterInput) (*AuthResult, error) {
		return svc.RegisterAccount(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd LoginInput) (*AuthResult, error) {
		return svc.Login(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd MeInput) (*domain.User, error) {
		return svc.Me(ctx, cmd)
	})
}
