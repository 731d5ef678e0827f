package chart

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
)

// constError lets sentinel errors be declared as constants.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrNoData is returned by Render for an empty Series.
	ErrNoData = constError("no client data to chart")

	// ErrRender wraps failures building or encoding the chart.
	ErrRender = constError("chart render failed")
)

// Figure geometry.
const (
	DPI    = 300
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch

	barWidth   = 18 // points
	markerSize = 3  // points
	tickAngle  = math.Pi / 4
)

// Series colors.
//
//nolint:gochecknoglobals // Fixed palette.
var (
	skyBlue = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	green   = color.RGBA{G: 0x80, A: 0xff}
	orange  = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
	red     = color.RGBA{R: 0xff, A: 0xff}
	dashes  = []vg.Length{vg.Points(6), vg.Points(3)}
)

// Render draws s and writes it to w as a PNG at DPI dots per inch.
func Render(w io.Writer, s Series) error {
	if s.Len() == 0 {
		return ErrNoData
	}

	p, err := newPlot(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI))
	p.Draw(draw.New(c))

	if _, err = (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("%w: encoding png: %w", ErrRender, err)
	}
	return nil
}

// WriteFile renders records to path, overwriting any existing file. With no
// records nothing is written and it returns false with a nil error.
//
// The image is rendered in memory first so a failed render leaves no file.
func WriteFile(ctx context.Context, path string, records []footprint.ClientRecord) (bool, error) {
	log := logging.FromContext(ctx).With().Str("component", "chart").Logger()

	s := BuildSeries(records)
	if s.Len() == 0 {
		log.Info().Str("path", path).Msg("no client records, skipping trend chart")
		return false, nil
	}

	var buf bytes.Buffer
	if err := Render(&buf, s); err != nil {
		return false, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // Chart is a shareable artifact.
		return false, fmt.Errorf("writing chart %q: %w", path, err)
	}

	log.Debug().Str("path", path).Int("clients", s.Len()).Msg("trend chart written")
	return true, nil
}

func newPlot(s Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Carbon Footprint Trends"
	p.X.Label.Text = "Clients"
	p.Y.Label.Text = "Metrics"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	bars, err := plotter.NewBarChart(plotter.Values(s.Footprint), vg.Points(barWidth))
	if err != nil {
		return nil, fmt.Errorf("footprint bars: %w", err)
	}
	bars.Color = skyBlue
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.Legend.Add("Carbon Footprint", bars)

	for _, metric := range []struct {
		label  string
		values []float64
		color  color.Color
	}{
		{"Energy", s.Energy, green},
		{"Transport", s.Transport, orange},
		{"Waste", s.Waste, red},
	} {
		line, points, lineErr := plotter.NewLinePoints(indexed(metric.values))
		if lineErr != nil {
			return nil, fmt.Errorf("%s line: %w", metric.label, lineErr)
		}
		line.Color = metric.color
		line.Dashes = dashes
		points.Shape = draw.CircleGlyph{}
		points.Color = metric.color
		points.Radius = vg.Points(markerSize)

		p.Add(line, points)
		p.Legend.Add(metric.label, line, points)
	}

	// Category axis: tick i is client i, labels rotated for long names.
	p.NominalX(s.Labels...)
	p.X.Tick.Label.Rotation = tickAngle
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}

// indexed places values at x = 0..n-1 to line up with the nominal axis.
func indexed(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}
