package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/xw1nchester/pinfinds-backend/internal/app"
	"github.com/xw1nchester/pinfinds-backend/internal/config"
	"github.com/xw1nchester/pinfinds-backend/internal/logging"
	"go.uber.org/zap"
)

// @title		Pinfinds API
// @version	1.0
// @description	Pincode based community directory of local service providers.
// @BasePath	/api
func main() {
	cfg := config.MustLoad()

	log := logging.New(cfg.Env)
	defer log.Sync()

	application, err := app.NewApp(log, *cfg)
	if err != nil {
		log.Fatal("failed to init app", zap.Error(err))
	}

	go application.MustRun()

	log.Info("server started",
		zap.String("addr", cfg.HTTPServer.Address),
		zap.String("env", cfg.Env),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("session", cfg.Session.Backend),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sign := <-stop

	log.Info("stopping server", zap.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("failed to stop server", zap.Error(err))
		return
	}

	log.Info("server stopped")
}
