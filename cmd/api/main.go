package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pwmeter/pwmeter-go/internal/config"
	"github.com/pwmeter/pwmeter-go/internal/password"
	"github.com/pwmeter/pwmeter-go/internal/repository"
	"github.com/pwmeter/pwmeter-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	blacklist := loadBlacklist(ctx, cfg.DatabaseDSN)

	gen := password.NewGenerator()
	if cfg.GeneratorSeed != nil {
		gen = password.NewSeededGenerator(*cfg.GeneratorSeed)
		slog.Warn("password generator is seeded; output is reproducible")
	}

	strengthService := service.NewStrengthService(blacklist)
	genService := service.NewGeneratorService(gen, service.LengthBounds{
		Min:     cfg.GeneratorMinLength,
		Max:     cfg.GeneratorMaxLength,
		Default: cfg.GeneratorDefaultLength,
	})

	if cfg.APITokenSecret == "" {
		slog.Warn("API_TOKEN_SECRET not set, /api/v1 is unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(ctx, cfg, strengthService, genService),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

// loadBlacklist extends the built-in common passwords with the database table
// when one is configured. Failures keep the built-in list.
func loadBlacklist(ctx context.Context, dsn string) password.Blacklist {
	blacklist := password.DefaultBlacklist()
	if dsn == "" {
		return blacklist
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db, err := repository.NewDB(ctx, dsn)
	if err != nil {
		slog.Warn("database connection failed, using built-in common passwords", "error", err)
		return blacklist
	}
	defer db.Close()

	words, err := repository.NewBlacklistRepository(db).List(ctx)
	if err != nil {
		slog.Warn("loading common passwords failed, using built-in list", "error", err)
		return blacklist
	}

	blacklist = blacklist.With(words...)
	slog.Info("common passwords loaded", "entries", blacklist.Len())
	return blacklist
}
