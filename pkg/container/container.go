package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"ariomuse-backend/internal/config"
	"ariomuse-backend/internal/store"
	"ariomuse-backend/pkg/jwt"

	"ariomuse-backend/internal/domains/composition"
	compositionHandler "ariomuse-backend/internal/domains/composition/handler"
	compositionRepo "ariomuse-backend/internal/domains/composition/repository"
	compositionService "ariomuse-backend/internal/domains/composition/service"
	"ariomuse-backend/internal/domains/generation"
	"ariomuse-backend/internal/domains/generation/gemini"
	generationHandler "ariomuse-backend/internal/domains/generation/handler"
	"ariomuse-backend/internal/domains/user"
	userHandler "ariomuse-backend/internal/domains/user/handler"
	userRepo "ariomuse-backend/internal/domains/user/repository"
	userService "ariomuse-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, store,
// repositories, services, handlers.
type Container struct {
	Config     *config.Config
	Store      store.Store
	JWTManager *jwt.Manager

	UserRepo        user.Repository
	CompositionRepo composition.Repository

	UserService        user.Service
	CompositionService composition.Service
	GenerationService  generation.Service

	UserHandler        *userHandler.UserHandler
	CompositionHandler *compositionHandler.CompositionHandler
	GenerationHandler  *generationHandler.GenerationHandler
}

// NewContainer builds and initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, err := newStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	c.Store = kv
	log.Printf("store initialized (driver: %s)", cfg.Store.Driver)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Repositories
	c.UserRepo = userRepo.NewStoreRepository(kv)
	c.CompositionRepo = compositionRepo.NewStoreRepository(kv)

	// Services
	c.UserService = userService.NewAuthService(c.UserRepo, c.JWTManager)
	c.CompositionService = compositionService.NewCompositionService(c.CompositionRepo)
	c.GenerationService = generation.NewService(gemini.NewClient(cfg.Gemini))

	// Restore a prior login so a restart does not sign the user out.
	if err := c.UserService.RestoreSession(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	// Handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CompositionHandler = compositionHandler.NewCompositionHandler(c.CompositionService)
	c.GenerationHandler = generationHandler.NewGenerationHandler(c.GenerationService)

	return c, nil
}

func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "file":
		return store.NewFileStore(cfg.Store.Dir)
	case "redis":
		s := store.NewRedisStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := s.Ping(ctx); err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		return store.NewPostgresStore(ctx, cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			log.Printf("store close error: %v", err)
		}
	}
}
