package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/xw1nchester/pinfinds-backend/internal/config"
	"github.com/xw1nchester/pinfinds-backend/internal/handlers"
	locationclient "github.com/xw1nchester/pinfinds-backend/internal/location/client"
	locationhandler "github.com/xw1nchester/pinfinds-backend/internal/location/handler"
	locationservice "github.com/xw1nchester/pinfinds-backend/internal/location/service"
	"github.com/xw1nchester/pinfinds-backend/internal/logging"
	providerdb "github.com/xw1nchester/pinfinds-backend/internal/provider/db"
	providerhandler "github.com/xw1nchester/pinfinds-backend/internal/provider/handler"
	providerservice "github.com/xw1nchester/pinfinds-backend/internal/provider/service"
	"github.com/xw1nchester/pinfinds-backend/internal/registration"
	registrationhandler "github.com/xw1nchester/pinfinds-backend/internal/registration/handler"
	registrationservice "github.com/xw1nchester/pinfinds-backend/internal/registration/service"
	"github.com/xw1nchester/pinfinds-backend/internal/session"
	sessionhandler "github.com/xw1nchester/pinfinds-backend/internal/session/handler"
	uploadhandler "github.com/xw1nchester/pinfinds-backend/internal/upload/handler"
	uploadservice "github.com/xw1nchester/pinfinds-backend/internal/upload/service"
	minioclient "github.com/xw1nchester/pinfinds-backend/pkg/client/minio"
	pgclient "github.com/xw1nchester/pinfinds-backend/pkg/client/postgresql"
	redisclient "github.com/xw1nchester/pinfinds-backend/pkg/client/redis"
	"github.com/xw1nchester/pinfinds-backend/pkg/transactor"
	pgtx "github.com/xw1nchester/pinfinds-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	"github.com/swaggo/http-swagger/v2"
	_ "github.com/xw1nchester/pinfinds-backend/docs"
)

type App struct {
	HTTPServer *http.Server
	log        *zap.Logger
	closers    []func()
}

func NewApp(log *zap.Logger, cfg config.Config) (*App, error) {
	ctx := context.Background()
	a := &App{log: log}

	providerRepository, txManager, err := a.newProviderStorage(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	store, err := a.newSessionStore(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	sessionState := session.NewState(store)

	tokenManager := session.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL)

	sessionMiddleware := session.NewMiddleware(log, tokenManager, session.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
	})

	locationClient := locationclient.New(locationclient.Config{
		BaseURL: cfg.Location.BaseURL,
		Timeout: cfg.Location.Timeout,
		RPS:     cfg.Location.RPS,
		Burst:   cfg.Location.Burst,
	}, log)

	locationService := locationservice.New(locationClient, sessionState, log)

	providerService := providerservice.New(providerRepository, txManager, log)

	machine := registration.NewMachine(
		providerService,
		registration.NewLogSender(log),
		registration.Config{
			OTPCode:       cfg.OTP.Code,
			DispatchDelay: cfg.OTP.DispatchDelay,
		},
		log,
	)

	registrationService := registrationservice.New(machine, sessionState, log)

	apiHandlers := []handlers.Handler{
		sessionhandler.New(sessionState, log),
		locationhandler.New(locationService, log),
		providerhandler.New(providerService, sessionState, log),
		registrationhandler.New(registrationService, log),
	}

	if cfg.Minio.Enabled {
		uploadHandler, err := a.newUploadHandler(ctx, cfg)
		if err != nil {
			a.close()
			return nil, err
		}
		apiHandlers = append(apiHandlers, uploadHandler)
	}

	router := chi.NewRouter()

	router.Use(
		logging.Middleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		r.Group(func(sessionRouter chi.Router) {
			sessionRouter.Use(sessionMiddleware)

			log.Info("register api handlers", zap.Int("count", len(apiHandlers)))

			handlers.RegisterAll(sessionRouter, apiHandlers...)
		})
	})

	a.HTTPServer = &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return a, nil
}

func (a *App) newProviderStorage(ctx context.Context, cfg config.Config) (providerservice.Repository, transactor.Manager, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		a.log.Info("using in-memory provider storage")
		return providerdb.NewMemory(providerdb.Seed()), transactor.NewNopManager(), nil
	case config.StoragePostgres:
		pgClient, err := pgclient.NewClient(ctx, pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
			MaxConns: cfg.PostgreSQL.MaxConns,
		})
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, pgClient.Close)

		return providerdb.NewPostgres(pgClient, a.log), pgtx.NewPgManager(pgClient), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func (a *App) newSessionStore(ctx context.Context, cfg config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case config.SessionMemory:
		a.log.Info("using in-memory session store")
		return session.NewMemoryStore(cfg.Session.TTL), nil
	case config.SessionRedis:
		redisClient, err := redisclient.New(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := redisClient.Close(); err != nil {
				a.log.Warn("error closing redis client", zap.Error(err))
			}
		})

		return session.NewRedisStore(redisClient, cfg.Session.KeyPrefix, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func (a *App) newUploadHandler(ctx context.Context, cfg config.Config) (handlers.Handler, error) {
	minioClient, err := minioclient.New(ctx, minioclient.Config{
		Endpoint:        cfg.Minio.Endpoint,
		AccessKeyID:     cfg.Minio.AccessKeyID,
		SecretAccessKey: cfg.Minio.SecretAccessKey,
		UseSSL:          cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	publicURL := cfg.Minio.PublicURL
	if publicURL == "" {
		publicURL = minioClient.EndpointURL().String()
	}

	uploadService := uploadservice.New(minioClient, uploadservice.Config{
		Bucket:    cfg.Minio.Bucket,
		PublicURL: publicURL,
	}, a.log)

	return uploadhandler.New(uploadService, cfg.Minio.MaxUploadSize, a.log), nil
}

// Handler exposes the router so the API can be served without a listener.
func (a *App) Handler() http.Handler {
	return a.HTTPServer.Handler
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

// Shutdown stops accepting requests and releases the storage clients.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.HTTPServer.Shutdown(ctx)
	a.close()
	return err
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
