package http

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"airquality-dashboard/internal/models"
)

// ReportResponse is the JSON form of a report. Means that could not be
// computed are null.
type ReportResponse struct {
	Start         string              `json:"start" example:"2013-03-01"`
	End           string              `json:"end" example:"2017-02-28"`
	Observations  int                 `json:"observations" example:"420768"`
	CO            MetricsResponse     `json:"co"`
	MonthlyCO     []MonthlyCOResponse `json:"monthly_co"`
	Stations      []StationResponse   `json:"stations"`
	MostPolluted  []StationResponse   `json:"most_polluted"`
	LeastPolluted []StationResponse   `json:"least_polluted"`
}

// MetricsResponse holds max/mean/min of the monthly CO means
type MetricsResponse struct {
	Max         *float64 `json:"max" example:"2316.2"`
	Mean        *float64 `json:"mean" example:"1230.8"`
	Min         *float64 `json:"min" example:"520.4"`
	MaxDisplay  string   `json:"max_display" example:"2316.2"`
	MeanDisplay string   `json:"mean_display" example:"1230.8"`
	MinDisplay  string   `json:"min_display" example:"520.4"`
}

// MonthlyCOResponse is one month of the CO line chart
type MonthlyCOResponse struct {
	Month        string   `json:"month" example:"2013-03-31"`
	MeanCO       *float64 `json:"mean_co" example:"1223.4"`
	Observations int      `json:"observations" example:"8928"`
}

// StationResponse is one station of the PM10 ranking
type StationResponse struct {
	Station      string   `json:"station" example:"Gucheng"`
	MeanPM10     *float64 `json:"mean_pm10" example:"118.8"`
	Observations int      `json:"observations" example:"35064"`
}

// DatasetResponse describes the loaded dataset
type DatasetResponse struct {
	MinDate      string   `json:"min_date" example:"2013-03-01"`
	MaxDate      string   `json:"max_date" example:"2017-02-28"`
	Observations int      `json:"observations" example:"420768"`
	Stations     []string `json:"stations"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"'start' must be <= 'end'"`
}

// GetReport godoc
// @Summary Get air quality report
// @Description Filters observations to an inclusive date range and returns monthly CO means, per-station PM10 means and the CO metrics
// @Tags AirQuality
// @Produce json
// @Param start query string false "First day, YYYY-MM-DD (defaults to the first day of the dataset)" example(2013-03-01)
// @Param end query string false "Last day, YYYY-MM-DD (defaults to the last day of the dataset)" example(2013-12-31)
// @Success 200 {object} ReportResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid date range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/report [get]
func (r *routes) handleReport(c *fiber.Ctx) error {
	rng, err := resolveRange(c, r.dataset.Span())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	report, err := r.service.BuildReport(r.dataset, rng)
	if err != nil {
		r.l.Error(err, map[string]any{
			"range": rng.String(),
		})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to build report",
		})
	}

	return c.JSON(toReportResponse(report))
}

// GetDataset godoc
// @Summary Get dataset information
// @Description Returns the selectable date span, the number of observations and the station names
// @Tags AirQuality
// @Produce json
// @Success 200 {object} DatasetResponse "Successful response"
// @Router /api/v1/dataset [get]
func (r *routes) handleDataset(c *fiber.Ctx) error {
	return c.JSON(DatasetResponse{
		MinDate:      r.dataset.MinDate.Format(models.DateLayout),
		MaxDate:      r.dataset.MaxDate.Format(models.DateLayout),
		Observations: len(r.dataset.Observations),
		Stations:     r.dataset.Stations(),
	})
}

func toReportResponse(report models.Report) ReportResponse {
	monthly := make([]MonthlyCOResponse, len(report.Monthly))
	for i, m := range report.Monthly {
		monthly[i] = MonthlyCOResponse{
			Month:        m.Month.Format(models.DateLayout),
			MeanCO:       nullable(m.MeanCO),
			Observations: m.Observations,
		}
	}

	return ReportResponse{
		Start:        report.Range.Start.Format(models.DateLayout),
		End:          report.Range.End.Format(models.DateLayout),
		Observations: report.Observations,
		CO: MetricsResponse{
			Max:         nullable(report.CO.Max),
			Mean:        nullable(report.CO.Mean),
			Min:         nullable(report.CO.Min),
			MaxDisplay:  models.FormatMetric(report.CO.Max),
			MeanDisplay: models.FormatMetric(report.CO.Mean),
			MinDisplay:  models.FormatMetric(report.CO.Min),
		},
		MonthlyCO:     monthly,
		Stations:      toStationResponses(report.Stations),
		MostPolluted:  toStationResponses(report.MostPolluted),
		LeastPolluted: toStationResponses(report.LeastPolluted),
	}
}

func toStationResponses(rows []models.StationPM10) []StationResponse {
	out := make([]StationResponse, len(rows))
	for i, s := range rows {
		out[i] = StationResponse{
			Station:      s.Station,
			MeanPM10:     nullable(s.MeanPM10),
			Observations: s.Observations,
		}
	}
	return out
}

// nullable maps NaN to nil, JSON has no NaN.
func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
