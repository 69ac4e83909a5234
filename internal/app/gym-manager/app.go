package gymmanager

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/gym-manager/internal/config"
	jwtlib "github.com/magabrotheeeer/gym-manager/internal/lib/jwt"
	scheduleservice "github.com/magabrotheeeer/gym-manager/internal/services/schedule"
	userservice "github.com/magabrotheeeer/gym-manager/internal/services/user"
	"github.com/magabrotheeeer/gym-manager/internal/storage/mongodb"
	"github.com/magabrotheeeer/gym-manager/internal/storage/repository"
)

// App объединяет HTTP-сервер и подключение к базе.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *mongodb.Storage
}

// New собирает приложение: хранилище, сервисы, маршруты, HTTP-сервер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.New(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	repo := repository.New(db)
	jwtMaker := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	userService := userservice.NewUserService(repo, logger)
	scheduleService := scheduleservice.NewScheduleService(repo, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker, userService, scheduleService)

	router.Get("/docs/*", httpSwagger.WrapHandler)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.Close(timeoutCtx); closeErr != nil {
			a.logger.Error("failed to close mongo connection", slog.Any("err", closeErr))
		}
		return err
	}
}
