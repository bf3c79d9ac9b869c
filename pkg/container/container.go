package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"newsroom-backend/internal/config"
	infraCache "newsroom-backend/internal/infrastructure/cache"
	"newsroom-backend/internal/infrastructure/database"
	"newsroom-backend/pkg/cache"
	"newsroom-backend/pkg/jwt"

	adHandler "newsroom-backend/internal/domains/ad/handler"
	adRepo "newsroom-backend/internal/domains/ad/repository"
	adService "newsroom-backend/internal/domains/ad/service"
	categoryHandler "newsroom-backend/internal/domains/category/handler"
	categoryRepo "newsroom-backend/internal/domains/category/repository"
	categoryService "newsroom-backend/internal/domains/category/service"
	commentHandler "newsroom-backend/internal/domains/comment/handler"
	commentRepo "newsroom-backend/internal/domains/comment/repository"
	commentService "newsroom-backend/internal/domains/comment/service"
	newsletterHandler "newsroom-backend/internal/domains/newsletter/handler"
	newsletterRepo "newsroom-backend/internal/domains/newsletter/repository"
	newsletterService "newsroom-backend/internal/domains/newsletter/service"
	postHandler "newsroom-backend/internal/domains/post/handler"
	postRepo "newsroom-backend/internal/domains/post/repository"
	postService "newsroom-backend/internal/domains/post/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds all application dependencies.
// It is the root of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains, singleton lifecycle.

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	PostRepo       postRepo.PostRepository
	CategoryRepo   categoryRepo.CategoryRepository
	CommentRepo    commentRepo.CommentRepository
	AdRepo         adRepo.RepositoryInterface
	NewsletterRepo newsletterRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	PostService       postService.ServiceInterface
	CategoryService   categoryService.ServiceInterface
	CommentService    commentService.ServiceInterface
	AdService         adService.ServiceInterface
	NewsletterService newsletterService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	PostHandler       *postHandler.PostHandler
	CategoryHandler   *categoryHandler.CategoryHandler
	CommentHandler    *commentHandler.CommentHandler
	AdHandler         *adHandler.AdHandler
	NewsletterHandler *newsletterHandler.NewsletterHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer creates and initializes the full dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Connect needs the concrete type, it is not part of the interface
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is non-critical, content endpoints still
			// serve from the database
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
	c.AdRepo = adRepo.NewPostgresAdRepository(pool)
	c.NewsletterRepo = newsletterRepo.NewPostgresNewsletterRepository(pool)
}

func (c *Container) initServices() {
	c.CommentService = commentService.NewCommentService(c.CommentRepo)

	// Post detail embeds the resolved comment tree, so the comment
	// service doubles as the post service's tree resolver.
	c.PostService = postService.NewPostService(c.PostRepo, c.CommentService, c.Cache)

	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.Cache)
	c.AdService = adService.NewAdService(c.AdRepo, c.Cache)
	c.NewsletterService = newsletterService.NewNewsletterService(c.NewsletterRepo)
}

func (c *Container) initHandlers() {
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.AdHandler = adHandler.NewAdHandler(c.AdService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService)
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup releases resources on shutdown.
// Called from the server's graceful shutdown path.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
