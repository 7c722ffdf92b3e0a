// Package app wires configuration, storage, services, the dispatcher and the
// HTTP server together and runs the process until shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres"
	auditrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/category"
	conversationrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/conversation"
	messagerepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/message"
	qualificationrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/qualification"
	questionrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/question"
	randomizationrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/randomization"
	userrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/user"
	"github.com/quizdeck/quizdeck-backend/internal/auth"
	"github.com/quizdeck/quizdeck-backend/internal/config"
	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	authsvc "github.com/quizdeck/quizdeck-backend/internal/service/auth"
	categorysvc "github.com/quizdeck/quizdeck-backend/internal/service/category"
	conversationsvc "github.com/quizdeck/quizdeck-backend/internal/service/conversation"
	qualificationsvc "github.com/quizdeck/quizdeck-backend/internal/service/qualification"
	questionsvc "github.com/quizdeck/quizdeck-backend/internal/service/question"
	randomizationsvc "github.com/quizdeck/quizdeck-backend/internal/service/randomization"
	"github.com/quizdeck/quizdeck-backend/internal/transport/middleware"
	"github.com/quizdeck/quizdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until the context is
// cancelled or SIGINT/SIGTERM arrives, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	users := userrepo.New(pool)
	auditLog := auditrepo.New(pool)
	categories := categoryrepo.New(pool)
	qualifications := qualificationrepo.New(pool)
	questions := questionrepo.New(pool)
	conversations := conversationrepo.New(pool)
	messages := messagerepo.New(pool)
	randomizations := randomizationrepo.New(pool)

	dispatcher := dispatch.New()

	authsvc.Register(dispatcher, authsvc.NewService(logger, users, jwtManager, cfg.Auth))
	categorysvc.Register(dispatcher, categorysvc.NewService(logger, categories, dispatcher, auditLog, txManager, cfg.Quiz))
	qualificationsvc.Register(dispatcher, qualificationsvc.NewService(logger, qualifications, dispatcher, auditLog, txManager, cfg.Quiz))
	questionsvc.Register(dispatcher, questionsvc.NewService(logger, questions, categories, qualifications, auditLog, txManager, cfg.Quiz))
	conversationsvc.Register(dispatcher, conversationsvc.NewService(logger, conversations, messages, txManager, cfg.Quiz))
	randomizationsvc.Register(dispatcher, randomizationsvc.NewService(logger, randomizations, categories, questions, txManager))

	health := rest.NewHealthHandler(pool, BuildVersion())
	mux := rest.NewRouter(dispatcher, health, logger)

	// Context attributes only flow inward: RequestID and Auth must wrap
	// Recovery and Logger for request_id and user_id to reach their log lines.
	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.ClientTTL)
		defer rateLimiter.Stop()
		mws = append(mws, rateLimiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
