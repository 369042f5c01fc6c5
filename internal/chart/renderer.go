package chart

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"meshgrowth/internal/analysis"
	"meshgrowth/internal/errors"
)

// Renderer draws the pipeline's PNG charts.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a renderer. A nil logger falls back to slog.Default().
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// seriesColors distinguishes the price-history lines.
var seriesColors = []color.RGBA{
	{R: 0, G: 100, B: 0, A: 255},
	{R: 70, G: 130, B: 180, A: 255},
	{R: 139, G: 0, B: 0, A: 255},
}

// seriesDashes keeps overlapping lines apart in grayscale prints.
var seriesDashes = [][]vg.Length{
	{vg.Points(6), vg.Points(3)},
	{vg.Points(3), vg.Points(3)},
	{vg.Points(8), vg.Points(2), vg.Points(2), vg.Points(2)},
}

// RenderTopGrowth draws the ranked areas as a vertical bar chart, in
// rank order. With no ranked areas there is nothing worth drawing, so
// the chart is skipped without error and no file is written.
func (r *Renderer) RenderTopGrowth(ctx context.Context, path string, areas []analysis.RankedArea, windowYears int) error {
	if len(areas) == 0 {
		r.logger.InfoContext(ctx, "no ranked areas, skipping growth chart",
			slog.String("path", path))
		return nil
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Growth Areas (avg yearly growth, last %d years)", len(areas), windowYears)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Mesh block"
	p.Y.Label.Text = "Average yearly growth (%)"

	values := make(plotter.Values, len(areas))
	labels := make([]string, len(areas))
	for i, area := range areas {
		values[i] = area.AvgGrowthPct
		labels[i] = area.MeshBlock
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.NewChartError("failed to build growth bar chart", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.Add(plotter.NewGrid())

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.NewChartError(fmt.Sprintf("failed to save growth chart to %s", path), err)
	}

	r.logger.InfoContext(ctx, "rendered growth chart",
		slog.String("path", path),
		slog.Int("area_count", len(areas)))

	return nil
}

// RenderPriceHistory draws one median-price line per block series, in
// rank order, with a legend of mesh-block identifiers. Like the growth
// chart it is skipped without error when there is nothing to draw.
func (r *Renderer) RenderPriceHistory(ctx context.Context, path string, series []analysis.BlockSeries) error {
	if len(series) == 0 {
		r.logger.InfoContext(ctx, "no price history, skipping price chart",
			slog.String("path", path))
		return nil
	}

	p := plot.New()
	p.Title.Text = "Median Price History of Top Growth Areas"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Median sale price"
	p.X.Tick.Marker = yearTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Years))
		for j, year := range s.Years {
			xys[j].X = float64(year)
			xys[j].Y = s.Prices[j]
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return errors.NewChartError(fmt.Sprintf("failed to build price line for %s", s.MeshBlock), err)
		}

		c := seriesColors[i%len(seriesColors)]
		line.Color = c
		line.Width = vg.Points(2)
		line.Dashes = seriesDashes[i%len(seriesDashes)]
		points.Color = c
		points.Shape = draw.CircleGlyph{}

		p.Add(line, points)
		p.Legend.Add(s.MeshBlock, line, points)
	}

	p.Add(plotter.NewGrid())

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.NewChartError(fmt.Sprintf("failed to save price chart to %s", path), err)
	}

	r.logger.InfoContext(ctx, "rendered price history chart",
		slog.String("path", path),
		slog.Int("series_count", len(series)))

	return nil
}

// yearTicks labels whole years only. The default ticker puts
// fractional years on short series.
type yearTicks struct{}

func (yearTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for y := int(math.Ceil(min)); y <= int(math.Floor(max)); y++ {
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	return ticks
}
