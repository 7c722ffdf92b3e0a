// Package auth implements account registration, password login and the
// authenticated-user lookup.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/config"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
}

// Service implements auth operations.
type Service struct {
	users userRepo
	jwt   tokenIssuer
	cfg   config.AuthConfig
	log   *slog.Logger
}

// NewService creates a new auth service instance.
func NewService(
	log *slog.Logger,
	users userRepo,
	jwt tokenIssuer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		log:   log.With("service", "auth"),
	}
}
