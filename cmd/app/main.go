package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	configs := cmd.LoadConfig(".env", logger)
	if level, err := logrus.ParseLevel(configs.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithError(err).Warn("unknown log level, keeping info")
	}

	gormDB, err := postgres.Open(configs.Database(), logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	if err := postgres.Migrate(gormDB); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.WithError(err).Fatal("failed to start jobs")
	}
	defer jobManager.StopAll()

	e, err := newWebServer(app, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to build web server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("web server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("web server shutdown")
	}
}

func newWebServer(app cmd.CompositionRoot, logger *logrus.Logger) (*echo.Echo, error) {
	doc, err := httpin.GetSwagger()
	if err != nil {
		return nil, err
	}

	e, err := httpin.NewRouter(app.CreateServer(), doc, logger)
	if err != nil {
		return nil, err
	}
	e.Logger.SetLevel(gommonlog.INFO)

	return e, nil
}
