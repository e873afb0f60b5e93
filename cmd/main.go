package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/spf13/afero"

	"movie-browse-server/internal/auth"
	"movie-browse-server/internal/config"
	"movie-browse-server/internal/database"
	"movie-browse-server/internal/handler"
	"movie-browse-server/internal/middleware"
	"movie-browse-server/internal/repository"
	"movie-browse-server/internal/service"
	"movie-browse-server/internal/store"
	"movie-browse-server/internal/tmdb"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Flat-file record stores
	fileStore, err := store.NewFileStore(afero.NewOsFs(), cfg.DataDir)
	if err != nil {
		slog.Error("failed to open data dir", "error", err)
		os.Exit(1)
	}
	if err := fileStore.Init(repository.UsersStore, repository.WatchlistStore); err != nil {
		slog.Error("failed to initialize record stores", "error", err)
		os.Exit(1)
	}

	// Initialize layers
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	userRepo := repository.NewUserRepository(fileStore)
	watchlistRepo := repository.NewWatchlistRepository(fileStore)
	accounts := service.NewAccountService(userRepo, tokens)
	watchlist := service.NewWatchlistService(watchlistRepo)

	authHandler := handler.NewAuthHandler(accounts)
	catalogHandler := handler.NewCatalogHandler(tmdbClient)
	watchlistHandler := handler.NewWatchlistHandler(watchlist)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Movie Browse Server",
		ServerHeader: "Movie-Browse",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Rate limiting is optional: without Redis the server runs unlimited.
	if cfg.Redis.Addr != "" {
		rdb, err := database.NewRedis(cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, running without rate limiting", "error", err)
		} else {
			window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			app.Use(middleware.NewRateLimiter(rdb, cfg.RateLimit.Max, window).Handler())
		}
	}

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// API routes
	api := app.Group("/api")
	api.Get("/health", handler.Health)
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/me", middleware.RequireToken(tokens), authHandler.Me)
	api.Get("/movies/:type", catalogHandler.ListCategory)
	api.Get("/search", catalogHandler.Search)
	api.Get("/details/:type/:id", catalogHandler.GetDetails)
	api.Get("/watchlist", watchlistHandler.List)
	api.Post("/watchlist", watchlistHandler.Add)
	api.Delete("/watchlist/:id", watchlistHandler.Remove)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down movie browse server...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	logAPIKeyHealth(cfg.TMDB.APIKey)
	slog.Info("starting movie browse server", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// logAPIKeyHealth flags a missing or placeholder TMDB credential at startup
// so a misconfigured deploy is visible before the first catalog request.
func logAPIKeyHealth(key string) {
	if key == "" || key == tmdb.PlaceholderAPIKey {
		slog.Warn("TMDB_API_KEY is not set, catalog routes will fail")
		return
	}
	masked := key
	if len(key) > 8 {
		masked = key[:4] + "..." + key[len(key)-4:]
	}
	slog.Info("TMDB_API_KEY loaded", "key", masked)
}
