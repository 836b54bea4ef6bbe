package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "airquality-dashboard/docs"

	"airquality-dashboard/config"
	"airquality-dashboard/internal/models"
	"airquality-dashboard/internal/presenter"
	"airquality-dashboard/internal/services/airquality"
	"airquality-dashboard/pkg/logger"
)

type routes struct {
	service   *airquality.ReportService
	dataset   *models.Dataset
	views     *presenter.Views
	dashboard config.DashboardConfig
	l         *logger.Logger
}

// NewRouter registers the dashboard, chart and API routes. dataset is read
// only; every request derives its own report from it.
func NewRouter(
	app *fiber.App,
	reportService *airquality.ReportService,
	dataset *models.Dataset,
	views *presenter.Views,
	dashboard config.DashboardConfig,
	l *logger.Logger,
) {
	r := &routes{
		service:   reportService,
		dataset:   dataset,
		views:     views,
		dashboard: dashboard,
		l:         l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", r.handleDashboard)
	app.Get("/charts/:name", r.handleChart)

	api := app.Group("/api/v1")
	api.Get("/report", r.handleReport)
	api.Get("/dataset", r.handleDataset)
}
