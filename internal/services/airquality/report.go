package airquality

import (
	"github.com/pkg/errors"

	"airquality-dashboard/internal/models"
	"airquality-dashboard/pkg/logger"
)

var ErrNoDataset = errors.New("dataset is not loaded")

// ReportService runs the filter and both aggregations for a date range.
// It keeps no state between calls.
type ReportService struct {
	l *logger.Logger
}

func NewReportService(l *logger.Logger) *ReportService {
	return &ReportService{
		l: l,
	}
}

// BuildReport recomputes every summary table from ds for r.
func (s *ReportService) BuildReport(ds *models.Dataset, r models.DateRange) (models.Report, error) {
	if ds == nil {
		return models.Report{}, errors.Wrapf(ErrNoDataset, "build report for %s", r)
	}

	filtered := FilterByRange(ds.Observations, r)
	monthly := MonthlyCOMeans(filtered)
	stations := StationPM10Means(filtered)

	report := models.Report{
		Range:         r,
		Observations:  len(filtered),
		Monthly:       monthly,
		Stations:      stations,
		MostPolluted:  MostPolluted(stations, TopN),
		LeastPolluted: LeastPolluted(stations, TopN),
		CO:            SummarizeCO(monthly),
	}

	s.l.Debug("report built", map[string]any{
		"range":        r.String(),
		"observations": report.Observations,
		"months":       len(monthly),
		"stations":     len(stations),
	})

	if report.Observations == 0 {
		s.l.Warning("no observations in range", map[string]any{
			"range": r.String(),
		})
	}

	return report, nil
}
