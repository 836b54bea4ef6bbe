package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"airquality-dashboard/config"
	v1 "airquality-dashboard/internal/controllers/http/v1"
	"airquality-dashboard/internal/presenter"
	"airquality-dashboard/internal/repositories"
	"airquality-dashboard/internal/services/airquality"
	"airquality-dashboard/pkg/httpserver"
	"airquality-dashboard/pkg/logger"
	"airquality-dashboard/pkg/observe"
)

// @title Air Quality Dashboard API
// @version 1.0.0
// @description Date-range air quality reports over a cleaned multi-station dataset: monthly CO means, per-station PM10 rankings and charts.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name AirQuality
// @tag.description Air quality reports and charts
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.App.Name, cnf.App.Env, writers...)
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		l.Warning("invalid log level, keeping debug", map[string]any{"level": cnf.Log.Level})
	}
	if hook != nil {
		hook.SetLogger(l)
	}

	views, err := presenter.LoadViews()
	if err != nil {
		l.Fatal("cannot load dashboard templates", map[string]any{"err": err})
	}

	repo := repositories.InitObservationRepository(cnf, l)

	loadCtx, loadCancel := context.WithTimeout(ctx, cnf.Dataset.FetchTimeout)
	dataset, err := repo.Load(loadCtx)
	loadCancel()
	if err != nil {
		l.Fatal("cannot load dataset", map[string]any{"err": err, "source": cnf.Dataset.URL})
	}

	service := airquality.NewReportService(l)

	app := httpserver.InitFiberServer(cnf.App.Name)

	v1.NewRouter(
		app,
		service,
		dataset,
		views,
		cnf.Dashboard,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Error(err, map[string]any{"port": cnf.Server.Port})
			cancel()
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":         cnf.Server.Port,
		"observations": len(dataset.Observations),
		"span":         dataset.Span().String(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cnf.Server.ShutdownTimeout)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
