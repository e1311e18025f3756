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

	"github.com/baharkarakas/bookshelf/internal/api"
	"github.com/baharkarakas/bookshelf/internal/auth"
	"github.com/baharkarakas/bookshelf/internal/config"
	"github.com/baharkarakas/bookshelf/internal/logger"
	"github.com/baharkarakas/bookshelf/internal/metrics"
	"github.com/baharkarakas/bookshelf/internal/services"
	"github.com/baharkarakas/bookshelf/internal/store"
	"github.com/baharkarakas/bookshelf/internal/web"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Error("store", "err", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repos.Close(closeCtx); err != nil {
			log.Error("store close", "err", err)
		}
	}()

	userSvc := services.NewUserService(repos.Users, log)
	bookSvc := services.NewBookService(repos.Books, log)

	if cfg.SeedDemoUsers {
		if err := userSvc.SeedDemo(ctx); err != nil {
			log.Error("seed users", "err", err)
			os.Exit(1)
		}
	}

	views, err := web.NewViews()
	if err != nil {
		log.Error("templates", "err", err)
		os.Exit(1)
	}
	if cfg.SessionSecret == "change_this_secret" {
		log.Warn("SESSION_SECRET is the default; set it outside dev")
	}

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Log:      log,
		Sessions: auth.NewSessionManager(cfg.SessionSecret, cfg.SessionMaxAge, cfg.Env == "prod"),
		Views:    views,
		Static:   web.Static(),
		UserSvc:  userSvc,
		BookSvc:  bookSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "driver", cfg.Driver())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
