package presenter

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"net/url"

	"airquality-dashboard/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Views holds the parsed dashboard templates.
type Views struct {
	tmpl *template.Template
}

// LoadViews parses the embedded templates. Call it during startup and do not
// serve requests if it fails.
func LoadViews() (*Views, error) {
	return loadViewsFromFS(templatesFS, "templates")
}

func loadViewsFromFS(fsys fs.FS, dir string) (*Views, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(sub, "*.html")
	if err != nil {
		return nil, err
	}
	return &Views{tmpl: tmpl}, nil
}

type Metric struct {
	Label string
	Value string
}

// DashboardData is the view model of the dashboard page.
type DashboardData struct {
	Title        string
	Caption      string
	Start        string
	End          string
	MinDate      string
	MaxDate      string
	Query        template.URL
	Observations int
	Metrics      []Metric
}

// NewDashboardData maps a report onto the page. span bounds the date pickers.
func NewDashboardData(title, caption string, span models.DateRange, report models.Report) *DashboardData {
	query := url.Values{}
	query.Set("start", report.Range.Start.Format(models.DateLayout))
	query.Set("end", report.Range.End.Format(models.DateLayout))

	return &DashboardData{
		Title:        title,
		Caption:      caption,
		Start:        report.Range.Start.Format(models.DateLayout),
		End:          report.Range.End.Format(models.DateLayout),
		MinDate:      span.Start.Format(models.DateLayout),
		MaxDate:      span.End.Format(models.DateLayout),
		Query:        template.URL(query.Encode()),
		Observations: report.Observations,
		Metrics: []Metric{
			{Label: "CO max", Value: models.FormatMetric(report.CO.Max)},
			{Label: "CO mean", Value: models.FormatMetric(report.CO.Mean)},
			{Label: "CO min", Value: models.FormatMetric(report.CO.Min)},
		},
	}
}

func (v *Views) RenderDashboard(w io.Writer, data *DashboardData) error {
	if v == nil || v.tmpl == nil {
		return errors.New("dashboard template not loaded: call presenter.LoadViews during startup")
	}
	return v.tmpl.ExecuteTemplate(w, "dashboard.html", data)
}
