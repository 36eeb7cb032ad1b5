package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/email"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	contactHandler "blog-backend/internal/domains/contact/handler"
	"blog-backend/internal/domains/feed"
	feedHandler "blog-backend/internal/domains/feed/handler"
	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every application dependency. It is the root of the
// dependency graph; everything in it is a singleton for the process
// lifetime.
type Container struct {
	// Infrastructure layer, shared across domains.
	Config       *config.Config
	DB           *database.PostgresDB // nil when the memory backend is active
	Cache        cache.Cache
	JWTManager   *jwt.Manager
	EmailService email.Service

	// Repository layer.
	UserRepo user.Repository
	PostRepo post.Repository

	// Service layer.
	UserService user.Service
	PostService post.Service
	FeedService feed.Service

	// Handler layer.
	UserHandler    *userHandler.UserHandler
	PostHandler    *postHandler.PostHandler
	FeedHandler    *feedHandler.FeedHandler
	ContactHandler *contactHandler.ContactHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, then infrastructure, then repositories, services and
// handlers. A wrong order is a nil pointer dereference at startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration. Depends on nothing.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
		"storage":     cfg.Storage.Backend,
	})

	// Step 2: storage backend.
	if cfg.Storage.Backend == "postgres" {
		if err := c.initPostgres(); err != nil {
			return nil, err
		}
	}

	// Step 3: cache. Redis failure is not critical; reads fall through
	// to the repository.
	c.initCache()

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	c.EmailService = email.NewSMTPService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.Recipient,
	)

	// Steps 4-6: repositories, services, handlers.
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initPostgres() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	logger.Info("database connected", nil)
	return nil
}

func (c *Container) initCache() {
	if !c.Config.Redis.Enabled {
		c.Cache = cache.Noop{}
		return
	}

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Warn("redis connection failed, caching disabled", map[string]interface{}{
			"error": err.Error(),
		})
		c.Cache = cache.Noop{}
		return
	}

	c.Cache = redisCache
	logger.Info("redis connected", nil)
}

func (c *Container) initRepositories() {
	switch c.Config.Storage.Backend {
	case "memory":
		c.UserRepo = userRepo.NewMemoryRepository()
		c.PostRepo = postRepo.NewMemoryRepository()
	default:
		c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
		c.PostRepo = postRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	}
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
		c.Config.Auth.AutoLogin,
	)

	c.PostService = postService.NewPostService(
		c.PostRepo,
		c.UserRepo, // resolves author names at read time
	)

	c.FeedService = c.loadFeed()
}

// loadFeed fetches the remote feed once. A failed fetch degrades the
// feed routes to 503 instead of failing startup.
func (c *Container) loadFeed() feed.Service {
	client := feed.NewClient(c.Config.Feed.URL, c.Config.Feed.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), c.Config.Feed.Timeout)
	defer cancel()

	records, err := client.Fetch(ctx)
	if err != nil {
		logger.Warn("feed fetch failed, feed routes degraded", map[string]interface{}{
			"url":   c.Config.Feed.URL,
			"error": err.Error(),
		})
		return feed.NewService(nil, false)
	}

	logger.Info("feed loaded", map[string]interface{}{"records": len(records)})
	return feed.NewService(records, true)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.FeedHandler = feedHandler.NewFeedHandler(c.FeedService)
	c.ContactHandler = contactHandler.NewContactHandler(c.EmailService)
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup releases infrastructure resources. Called during graceful
// shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		logger.Info("database connections closed", nil)
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
