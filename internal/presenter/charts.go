package presenter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"airquality-dashboard/internal/models"
)

const (
	chartWidth  = 1024
	chartHeight = 480
	barHeight   = 420

	noDataMessage = "No data in the selected range"
)

var (
	lineColor = drawing.ColorFromHex("365486")
	axisColor = drawing.ColorFromHex("444444")

	// MostPollutedPalette highlights the worst station.
	MostPollutedPalette = []drawing.Color{
		drawing.ColorFromHex("BF3131"),
		drawing.ColorFromHex("F4F27E"),
	}
	// LeastPollutedPalette highlights the cleanest station.
	LeastPollutedPalette = []drawing.Color{
		drawing.ColorFromHex("A8DF8E"),
		drawing.ColorFromHex("F4F27E"),
	}
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// RenderMonthlyCO draws the monthly CO means as a line with a dot per month.
// Months whose mean is NaN are left out of the line.
func RenderMonthlyCO(w io.Writer, rows []models.MonthlyCO, format Format) error {
	const title = "Monthly mean CO"

	var xs []time.Time
	var ys []float64
	for _, r := range rows {
		if math.IsNaN(r.MeanCO) {
			continue
		}
		xs = append(xs, r.Month)
		ys = append(ys, r.MeanCO)
	}

	if len(xs) == 0 {
		return renderPlaceholder(w, format, title, chartWidth, chartHeight)
	}

	ch := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 30, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "Period (year-month)",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
			Range:          timeRange(xs),
		},
		YAxis: chart.YAxis{
			Name:  "CO",
			Range: valueRange(ys),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "CO",
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 3,
					DotColor:    lineColor,
					DotWidth:    5,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	if err := ch.Render(format.provider(), w); err != nil {
		return fmt.Errorf("render monthly CO chart: %w", err)
	}
	return nil
}

// timeRange pads a lone month so the axis never has zero width.
func timeRange(xs []time.Time) *chart.ContinuousRange {
	lo, hi := xs[0], xs[len(xs)-1]
	if !hi.After(lo) {
		lo = lo.AddDate(0, 0, -15)
		hi = hi.AddDate(0, 0, 15)
	}
	return &chart.ContinuousRange{
		Min: chart.TimeToFloat64(lo),
		Max: chart.TimeToFloat64(hi),
	}
}

func valueRange(ys []float64) *chart.ContinuousRange {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}

	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1)
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// BarOptions describes one horizontal station bar chart.
type BarOptions struct {
	Title   string
	XLabel  string
	Palette []drawing.Color
	// Mirrored grows bars right to left and puts labels on the right.
	Mirrored bool
}

// RenderStationBars draws one horizontal bar per station, top to bottom in
// the order given. Stations with a NaN mean get a label but no bar.
func RenderStationBars(w io.Writer, rows []models.StationPM10, opts BarOptions, format Format) error {
	if len(rows) == 0 {
		return renderPlaceholder(w, format, opts.Title, chartWidth/2, barHeight)
	}

	r, err := newCanvas(format, chartWidth/2, barHeight)
	if err != nil {
		return err
	}

	width, height := chartWidth/2, barHeight
	const (
		pad       = 20
		labelGap  = 10
		tickCount = 4
	)

	titleBottom := drawTitle(r, opts.Title, width, pad)

	r.SetFontSize(11)
	r.SetFontColor(axisColor)
	labelWidth := 0
	for _, row := range rows {
		if tb := r.MeasureText(row.Station); tb.Width() > labelWidth {
			labelWidth = tb.Width()
		}
	}

	plotTop := titleBottom + pad
	plotBottom := height - 3*pad
	plotLeft, plotRight := pad+labelWidth+labelGap, width-pad
	if opts.Mirrored {
		plotLeft, plotRight = pad, width-pad-labelWidth-labelGap
	}
	plotWidth := plotRight - plotLeft

	maxValue := 0.0
	for _, row := range rows {
		if !math.IsNaN(row.MeanPM10) && row.MeanPM10 > maxValue {
			maxValue = row.MeanPM10
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	// x position of a value, measured from the bar origin
	scale := func(v float64) int {
		offset := int(math.Round(v / maxValue * float64(plotWidth)))
		if opts.Mirrored {
			return plotRight - offset
		}
		return plotLeft + offset
	}

	slot := (plotBottom - plotTop) / len(rows)
	thickness := slot * 7 / 10
	for i, row := range rows {
		top := plotTop + i*slot + (slot-thickness)/2
		mid := top + thickness/2

		if !math.IsNaN(row.MeanPM10) {
			origin, end := scale(0), scale(row.MeanPM10)
			if origin > end {
				origin, end = end, origin
			}
			fillRect(r, origin, top, end, top+thickness, paletteColor(opts.Palette, i))
		}

		tb := r.MeasureText(row.Station)
		x := plotLeft - labelGap - tb.Width()
		if opts.Mirrored {
			x = plotRight + labelGap
		}
		r.Text(row.Station, x, mid+tb.Height()/2)
	}

	// value axis
	strokeLine(r, plotLeft, plotBottom, plotRight, plotBottom, axisColor)
	for i := 0; i <= tickCount; i++ {
		v := maxValue * float64(i) / tickCount
		x := scale(v)
		strokeLine(r, x, plotBottom, x, plotBottom+5, axisColor)

		label := strconv.FormatFloat(v, 'f', 0, 64)
		tb := r.MeasureText(label)
		r.Text(label, x-tb.Width()/2, plotBottom+8+tb.Height())
	}

	if opts.XLabel != "" {
		tb := r.MeasureText(opts.XLabel)
		r.Text(opts.XLabel, plotLeft+(plotWidth-tb.Width())/2, height-pad/2)
	}

	if err := r.Save(w); err != nil {
		return fmt.Errorf("render station chart: %w", err)
	}
	return nil
}

func paletteColor(palette []drawing.Color, i int) drawing.Color {
	if len(palette) == 0 {
		return lineColor
	}
	if i < len(palette) {
		return palette[i]
	}
	return palette[len(palette)-1]
}

func renderPlaceholder(w io.Writer, format Format, title string, width, height int) error {
	r, err := newCanvas(format, width, height)
	if err != nil {
		return err
	}

	drawTitle(r, title, width, 20)

	r.SetFontSize(12)
	r.SetFontColor(axisColor)
	tb := r.MeasureText(noDataMessage)
	r.Text(noDataMessage, (width-tb.Width())/2, height/2)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("render placeholder: %w", err)
	}
	return nil
}

func newCanvas(format Format, width, height int) (chart.Renderer, error) {
	r, err := format.provider()(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)

	fillRect(r, 0, 0, width, height, drawing.ColorWhite)

	return r, nil
}

// drawTitle centres title at the top and returns the y of its baseline.
func drawTitle(r chart.Renderer, title string, width, top int) int {
	r.SetFontSize(16)
	r.SetFontColor(drawing.ColorBlack)
	tb := r.MeasureText(title)
	baseline := top + tb.Height()
	r.Text(title, (width-tb.Width())/2, baseline)
	return baseline
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetFillColor(c)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

func strokeLine(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetStrokeColor(c)
	r.SetStrokeWidth(1)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}
