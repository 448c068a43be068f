package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-form-server/internal/config"
	"contact-form-server/internal/db"
	transport "contact-form-server/internal/http"
	"contact-form-server/internal/http/handlers"
	"contact-form-server/internal/repo"
	"contact-form-server/internal/services"
	"github.com/gin-gonic/gin"
)

type stores struct {
	users   services.UserStore
	forms   services.FormStore
	pinger  handlers.Pinger
	migrate func(context.Context) error
	close   func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect to database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer st.close()

	if cfg.RunMigrations {
		if err := st.migrate(ctx); err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	if cfg.SeedUsername != "" {
		created, err := db.EnsureSeedUser(ctx, st.users, cfg.SeedUsername, cfg.SeedPassword, cfg.BcryptCost)
		if err != nil {
			logger.Error("failed to seed user", "error", err)
			os.Exit(1)
		}
		if created {
			logger.Info("seed user created", "username", cfg.SeedUsername)
		}
	}

	tokens := services.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(st.users, tokens, cfg.BcryptCost)
	formService := services.NewFormService(st.forms)

	router := transport.NewRouter(transport.Dependencies{
		Config:      cfg,
		AuthService: authService,
		FormService: formService,
		Tokens:      tokens,
		DB:          st.pinger,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.DBDriver == config.DriverGorm {
		gdb, err := db.ConnectGorm(ctx, cfg.DBURL)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:   repo.NewGormUserRepo(gdb.DB, cfg.RequestTimeout),
			forms:   repo.NewGormFormRepo(gdb.DB, cfg.RequestTimeout),
			pinger:  gdb,
			migrate: gdb.Migrate,
			close:   gdb.Close,
		}, nil
	}

	conn, err := db.Connect(ctx, cfg.DBURL)
	if err != nil {
		return nil, err
	}
	return &stores{
		users:   repo.NewUserRepo(conn.Pool, cfg.RequestTimeout),
		forms:   repo.NewFormRepo(conn.Pool, cfg.RequestTimeout),
		pinger:  conn,
		migrate: conn.Migrate,
		close:   conn.Close,
	}, nil
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
