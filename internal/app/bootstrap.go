// Package app wires the application together: it builds the connection
// pool, repositories, services, and the HTTP router from configuration.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"justdebate.online/backend/internal/api/handlers"
	"justdebate.online/backend/internal/auth"
	"justdebate.online/backend/internal/config"
	"justdebate.online/backend/internal/pkg/logger"
	"justdebate.online/backend/internal/repository"
	"justdebate.online/backend/internal/service"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Application holds the assembled components of a running instance.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	Pool   *pgxpool.Pool
}

// Bootstrap constructs the full application from configuration. It is the
// composition root: everything downstream receives its dependencies
// explicitly.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	pool, err := repository.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	users := repository.NewUserRepository(pool)
	topics := repository.NewTopicRepository(pool)
	arguments := repository.NewArgumentRepository(pool)
	replies := repository.NewReplyRepository(pool)
	votes := repository.NewVoteRepository(pool)
	comments := repository.NewCommentRepository(pool)
	txManager := repository.NewTxManager(pool)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	google := auth.NewGoogleVerifier(cfg.Auth.GoogleClientID)

	authService := service.NewAuthService(users, google, tokens, cfg.Auth)
	userService := service.NewUserService(users, comments)
	topicService := service.NewTopicService(topics)
	argumentService := service.NewArgumentService(arguments, replies, votes, topics, txManager)

	server := handlers.NewServer(handlers.ServerDeps{
		Auth:      authService,
		Users:     userService,
		Topics:    topicService,
		Arguments: argumentService,
		Health:    pool,
		Version:   Version,
	})

	router := newRouter(cfg, server, authService)

	logger.Info("application bootstrapped")

	return &Application{
		Config: cfg,
		Router: router,
		Pool:   pool,
	}, nil
}

// Close releases the application's resources.
func (a *Application) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}
