package repositories

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"airquality-dashboard/internal/models"
	"airquality-dashboard/pkg/logger"
)

const (
	ColumnDate    = "date"
	ColumnStation = "station"
	ColumnCO      = "CO"
	ColumnPM10    = "PM10"
)

var requiredColumns = []string{ColumnDate, ColumnStation, ColumnCO, ColumnPM10}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// CSVRepository loads observations from a CSV resource. Sources starting with
// http:// or https:// are fetched, anything else is read as a local path.
type CSVRepository struct {
	source     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewCSVRepository(source string, l *logger.Logger, httpClient HTTPClient) *CSVRepository {
	return &CSVRepository{
		source:     source,
		httpClient: httpClient,
		l:          l,
	}
}

func (r *CSVRepository) Name() string {
	return "csv"
}

func (r *CSVRepository) Load(ctx context.Context) (*models.Dataset, error) {
	r.l.Info("loading observations", map[string]any{
		"source": r.source,
	})

	body, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	ds, err := ParseObservations(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.source, err)
	}

	r.l.Info("observations loaded", map[string]any{
		"source":       r.source,
		"observations": len(ds.Observations),
		"minDate":      ds.MinDate.Format(models.DateLayout),
		"maxDate":      ds.MaxDate.Format(models.DateLayout),
	})

	return ds, nil
}

func (r *CSVRepository) open(ctx context.Context) (io.ReadCloser, error) {
	if !isRemote(r.source) {
		f, err := os.Open(strings.TrimPrefix(r.source, "file://"))
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	r.l.Info("received dataset response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	// Check for HTTP error status codes
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	return resp.Body, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ParseObservations reads a CSV table with at least the date, station, CO
// and PM10 columns. The result is sorted ascending by date.
func ParseObservations(r io.Reader) (*models.Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithTypes(map[string]series.Type{
			ColumnDate:    series.String,
			ColumnStation: series.String,
			ColumnCO:      series.Float,
			ColumnPM10:    series.Float,
		}),
		dataframe.NaNValues([]string{"NA", "NaN", "<nil>", ""}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", df.Err)
	}

	if err := checkColumns(df.Names()); err != nil {
		return nil, err
	}

	dates := df.Col(ColumnDate).Records()
	stations := df.Col(ColumnStation).Records()
	co := df.Col(ColumnCO).Float()
	pm10 := df.Col(ColumnPM10).Float()

	observations := make([]models.Observation, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		date, err := parseDate(dates[i])
		if err != nil {
			// +2: header line and 1-based numbering
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}

		observations = append(observations, models.Observation{
			Date:    date,
			Station: stations[i],
			CO:      co[i],
			PM10:    pm10[i],
		})
	}

	if len(observations) == 0 {
		return nil, fmt.Errorf("dataset has no observations")
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Date.Before(observations[j].Date)
	})

	return &models.Dataset{
		Observations: observations,
		MinDate:      models.Day(observations[0].Date),
		MaxDate:      models.Day(observations[len(observations)-1].Date),
	}, nil
}

func checkColumns(names []string) error {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	var missing []string
	for _, c := range requiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}
