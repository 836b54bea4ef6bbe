package repositories

import (
	"context"
	"net/http"

	"airquality-dashboard/config"
	"airquality-dashboard/internal/models"
	"airquality-dashboard/pkg/logger"
)

type ObservationRepository interface {
	Name() string
	Load(ctx context.Context) (*models.Dataset, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func InitObservationRepository(cfg *config.Config, l *logger.Logger) ObservationRepository {
	client := &http.Client{Timeout: cfg.Dataset.FetchTimeout}

	return NewCSVRepository(cfg.Dataset.URL, l, client)
}
