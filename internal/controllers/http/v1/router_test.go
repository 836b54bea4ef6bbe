package http

import (
	"bytes"
	"image/png"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airquality-dashboard/config"
	"airquality-dashboard/internal/models"
	"airquality-dashboard/internal/presenter"
	"airquality-dashboard/internal/services/airquality"
	"airquality-dashboard/pkg/httpserver"
	"airquality-dashboard/pkg/logger"
)

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	obs := []models.Observation{
		{Date: date("2023-01-05"), Station: "A", CO: 1.0, PM10: 10},
		{Date: date("2023-01-20"), Station: "B", CO: 3.0, PM10: 50},
		{Date: date("2023-02-10"), Station: "C", CO: 5.0, PM10: 30},
	}
	ds := &models.Dataset{Observations: obs, MinDate: date("2023-01-05"), MaxDate: date("2023-02-10")}

	views, err := presenter.LoadViews()
	require.NoError(t, err)

	l := logger.NewZapLogger("test-app", "test", io.Discard)
	app := httpserver.InitFiberServer("test-app")
	NewRouter(app, airquality.NewReportService(l), ds, views, config.DashboardConfig{
		Title:   "Air Quality Analysis in China",
		Caption: "Copyright © Zayadi 2024",
	}, l)

	return app
}

func getJSON(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), string(body))

	return resp.StatusCode
}

func TestReport_FullRangeByDefault(t *testing.T) {
	app := newTestApp(t)

	var report ReportResponse
	status := getJSON(t, app, "/api/v1/report", &report)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "2023-01-05", report.Start)
	assert.Equal(t, "2023-02-10", report.End)
	assert.Equal(t, 3, report.Observations)

	require.Len(t, report.MonthlyCO, 2)
	assert.Equal(t, "2023-01-31", report.MonthlyCO[0].Month)
	assert.Equal(t, 2.0, *report.MonthlyCO[0].MeanCO)
	assert.Equal(t, "2023-02-28", report.MonthlyCO[1].Month)
	assert.Equal(t, 5.0, *report.MonthlyCO[1].MeanCO)

	assert.Equal(t, "5.0", report.CO.MaxDisplay)
	assert.Equal(t, "3.5", report.CO.MeanDisplay)
	assert.Equal(t, "2.0", report.CO.MinDisplay)

	require.Len(t, report.MostPolluted, 3)
	assert.Equal(t, "B", report.MostPolluted[0].Station)
	assert.Equal(t, "A", report.MostPolluted[2].Station)
	require.Len(t, report.LeastPolluted, 3)
	assert.Equal(t, "A", report.LeastPolluted[0].Station)
	assert.Equal(t, "B", report.LeastPolluted[2].Station)
}

func TestReport_EmptyRangeHasNullMetrics(t *testing.T) {
	app := newTestApp(t)

	var report ReportResponse
	status := getJSON(t, app, "/api/v1/report?start=2023-01-06&end=2023-01-06", &report)

	require.Equal(t, fiber.StatusOK, status)
	assert.Zero(t, report.Observations)
	assert.Empty(t, report.MonthlyCO)
	assert.Nil(t, report.CO.Max)
	assert.Equal(t, "NaN", report.CO.MeanDisplay)
}

func TestReport_ClampsToDatasetSpan(t *testing.T) {
	app := newTestApp(t)

	var report ReportResponse
	status := getJSON(t, app, "/api/v1/report?start=2000-01-01&end=2030-01-01", &report)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "2023-01-05", report.Start)
	assert.Equal(t, "2023-02-10", report.End)
}

func TestReport_InvalidRange(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		query string
		want  string
	}{
		{"start=2023-02-01&end=2023-01-10", "'start' must be <= 'end'"},
		{"start=01/02/2023", "invalid 'start'"},
		{"end=tomorrow", "invalid 'end'"},
	}

	for _, tt := range tests {
		var errResp ErrorResponse
		status := getJSON(t, app, "/api/v1/report?"+tt.query, &errResp)

		assert.Equal(t, fiber.StatusBadRequest, status, tt.query)
		assert.Contains(t, errResp.Error, tt.want)
	}
}

func TestReport_Idempotent(t *testing.T) {
	app := newTestApp(t)

	read := func() []byte {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/report?start=2023-01-05&end=2023-01-31", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return body
	}

	assert.Equal(t, read(), read())
}

func TestDataset(t *testing.T) {
	app := newTestApp(t)

	var ds DatasetResponse
	status := getJSON(t, app, "/api/v1/dataset", &ds)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "2023-01-05", ds.MinDate)
	assert.Equal(t, "2023-02-10", ds.MaxDate)
	assert.Equal(t, 3, ds.Observations)
	assert.Equal(t, []string{"A", "B", "C"}, ds.Stations)
}

func TestDashboardPage(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/?start=2023-01-05&end=2023-01-31", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, "Air Quality Analysis in China")
	assert.Contains(t, html, `min="2023-01-05"`)
	assert.Contains(t, html, `max="2023-02-10"`)
	assert.Contains(t, html, "/charts/pm10-least?end=2023-01-31&amp;start=2023-01-05")
}

func TestCharts(t *testing.T) {
	app := newTestApp(t)

	for _, name := range []string{chartMonthlyCO, chartMostPM10, chartLeastPM10} {
		resp, err := app.Test(httptest.NewRequest("GET", "/charts/"+name, nil), -1)
		require.NoError(t, err)

		require.Equal(t, fiber.StatusOK, resp.StatusCode, name)
		assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(body))
		assert.NoError(t, err, name)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/charts/pm10-least?format=svg&start=2023-02-01", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "image/svg+xml", resp.Header.Get(fiber.HeaderContentType))
}

func TestCharts_Errors(t *testing.T) {
	app := newTestApp(t)

	var errResp ErrorResponse
	assert.Equal(t, fiber.StatusNotFound, getJSON(t, app, "/charts/pie", &errResp))
	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/charts/co-monthly?format=gif", &errResp))
	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/charts/co-monthly?start=2023-02-01&end=2023-01-01", &errResp))
}

func TestHealthcheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/manage/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}
