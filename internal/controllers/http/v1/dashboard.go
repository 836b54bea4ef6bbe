package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"airquality-dashboard/internal/presenter"
)

const (
	chartMonthlyCO = "co-monthly"
	chartMostPM10  = "pm10-most"
	chartLeastPM10 = "pm10-least"
	pm10AxisLabel  = "PM10 concentration"
	mostPolluted   = "Stations with the most PM10"
	leastPolluted  = "Stations with the least PM10"
)

func (r *routes) handleDashboard(c *fiber.Ctx) error {
	span := r.dataset.Span()

	rng, err := resolveRange(c, span)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	report, err := r.service.BuildReport(r.dataset, rng)
	if err != nil {
		r.l.Error(err, map[string]any{"range": rng.String()})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to build report",
		})
	}

	data := presenter.NewDashboardData(r.dashboard.Title, r.dashboard.Caption, span, report)

	var buf bytes.Buffer
	if err := r.views.RenderDashboard(&buf, data); err != nil {
		r.l.Error(err, map[string]any{"range": rng.String()})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to render dashboard",
		})
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// GetChart godoc
// @Summary Render a dashboard chart
// @Description Renders the monthly CO line chart or one of the PM10 station rankings for a date range
// @Tags AirQuality
// @Produce png
// @Produce image/svg+xml
// @Param name path string true "Chart name" Enums(co-monthly, pm10-most, pm10-least)
// @Param start query string false "First day, YYYY-MM-DD" example(2013-03-01)
// @Param end query string false "Last day, YYYY-MM-DD" example(2013-12-31)
// @Param format query string false "png (default) or svg" Enums(png, svg)
// @Success 200 {file} file "Rendered chart"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Unknown chart"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /charts/{name} [get]
func (r *routes) handleChart(c *fiber.Ctx) error {
	name := c.Params("name")
	if name != chartMonthlyCO && name != chartMostPM10 && name != chartLeastPM10 {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Unknown chart: " + name,
		})
	}

	format, err := presenter.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	rng, err := resolveRange(c, r.dataset.Span())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	report, err := r.service.BuildReport(r.dataset, rng)
	if err != nil {
		r.l.Error(err, map[string]any{"range": rng.String(), "chart": name})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to build report",
		})
	}

	var buf bytes.Buffer
	switch name {
	case chartMonthlyCO:
		err = presenter.RenderMonthlyCO(&buf, report.Monthly, format)
	case chartMostPM10:
		err = presenter.RenderStationBars(&buf, report.MostPolluted, presenter.BarOptions{
			Title:   mostPolluted,
			XLabel:  pm10AxisLabel,
			Palette: presenter.MostPollutedPalette,
		}, format)
	case chartLeastPM10:
		err = presenter.RenderStationBars(&buf, report.LeastPolluted, presenter.BarOptions{
			Title:    leastPolluted,
			XLabel:   pm10AxisLabel,
			Palette:  presenter.LeastPollutedPalette,
			Mirrored: true,
		}, format)
	}
	if err != nil {
		r.l.Error(err, map[string]any{"range": rng.String(), "chart": name})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to render chart",
		})
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(buf.Bytes())
}
