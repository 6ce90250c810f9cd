package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"resumate-backend/internal/accounts"
	"resumate-backend/internal/builder"
	"resumate-backend/internal/render"
	"resumate-backend/internal/resumes"
	"resumate-backend/internal/shared/auth"
	"resumate-backend/internal/shared/config"
	"resumate-backend/internal/shared/server"
	"resumate-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Redis  redis.UniversalClient

	Tokens *auth.Manager

	ResumesRepo  resumes.Repo
	AccountsRepo accounts.Repo
	SessionStore builder.Store

	ResumesService  *resumes.Service
	AccountsService *accounts.Service
	BuilderService  *builder.Service

	ResumesHandler  *resumes.Handler
	AccountsHandler *accounts.Handler
	GoogleAuth      *accounts.GoogleHandler
	BuilderHandler  *builder.Handler
	RenderHandler   *render.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := buildRedis(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Redis:  redisClient,
		Tokens: auth.NewManager(cfg.JWTSecret, cfg.SessionTTL),
	}

	if sqlDB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
		app.AccountsRepo = &accounts.PGRepo{DB: sqlDB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.AccountsRepo = accounts.NewMemoryRepo()
	}

	if redisClient != nil {
		app.SessionStore = builder.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		app.SessionStore = builder.NewMemoryStore()
	}

	app.ResumesService = resumes.NewService(app.ResumesRepo)
	app.AccountsService = accounts.NewService(app.AccountsRepo)
	app.BuilderService = builder.NewService(app.ResumesService, app.SessionStore)

	secureCookie := cfg.IsProduction()
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.AccountsHandler = accounts.NewHandler(app.AccountsService, app.Tokens, secureCookie)
	app.GoogleAuth = accounts.NewGoogleHandler(
		app.AccountsService, app.Tokens,
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL,
		secureCookie,
	)
	app.BuilderHandler = builder.NewHandler(app.BuilderService)
	app.RenderHandler = render.NewHandler(app.ResumesService, app.BuilderService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   cfg,
		Tokens:   app.Tokens,
		Accounts: app.AccountsHandler,
		Google:   app.GoogleAuth,
		Resumes:  app.ResumesHandler,
		Builder:  app.BuilderHandler,
		Render:   app.RenderHandler,
	})
	return app, nil
}

// Close releases held connections.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildRedis(cfg config.Config) (redis.UniversalClient, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		log.Printf("bootstrap: REDIS_URL empty; builder sessions held in memory")
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "":
		return true
	}
	return false
}
