package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/scatterangle/pkg/layout"
)

// Figure formats supported by [RenderPlot].
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatEPS = "eps"
)

const (
	// DefaultWidth is the default figure width.
	DefaultWidth = 12 * vg.Inch

	axisAllowance = vg.Inch
	minHeight     = 3 * vg.Inch
	maxAspect     = 3.0

	outlineWidth    = 1.5
	sampleLineWidth = 2.0
)

var rayDashes = []vg.Length{vg.Points(5), vg.Points(3)}

// PlotOption configures figure rendering.
type PlotOption func(*plotRenderer)

type plotRenderer struct {
	width  vg.Length
	title  string
	legend bool
}

// WithWidth sets the figure width. The height is derived from the scene.
func WithWidth(w vg.Length) PlotOption {
	return func(r *plotRenderer) {
		if w > 0 {
			r.width = w
		}
	}
}

// WithTitle sets a title above the axes.
func WithTitle(title string) PlotOption { return func(r *plotRenderer) { r.title = title } }

// WithoutLegend hides the legend.
func WithoutLegend() PlotOption { return func(r *plotRenderer) { r.legend = false } }

// IsPlotFormat reports whether format is handled by [RenderPlot].
func IsPlotFormat(format string) bool {
	switch format {
	case FormatSVG, FormatPNG, FormatPDF, FormatEPS:
		return true
	}
	return false
}

// RenderPlot draws the scene and encodes it in the given figure format.
func RenderPlot(s layout.Scene, format string, opts ...PlotOption) ([]byte, error) {
	if !IsPlotFormat(format) {
		return nil, fmt.Errorf("unsupported figure format: %q", format)
	}
	r := plotRenderer{width: DefaultWidth, legend: true}
	for _, opt := range opts {
		opt(&r)
	}

	p, win, err := r.build(s)
	if err != nil {
		return nil, err
	}

	w, h := r.size(win)
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return nil, fmt.Errorf("create %s canvas: %w", format, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func (r *plotRenderer) build(s layout.Scene) (*plot.Plot, layout.Bounds, error) {
	p := plot.New()
	p.Title.Text = r.title
	p.X.Label.Text = layout.LabelX
	p.Y.Label.Text = layout.LabelY
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, rect := range s.Rects {
		if !rect.Finite() {
			continue
		}
		poly, err := plotter.NewPolygon(rectXYs(rect))
		if err != nil {
			return nil, layout.Bounds{}, fmt.Errorf("%s outline: %w", rect.Kind, err)
		}
		poly.LineStyle.Color = toColor(rect.Color)
		poly.LineStyle.Width = vg.Points(outlineWidth)
		if rect.Filled {
			poly.Color = toColor(rect.Color)
			poly.LineStyle.Width = vg.Points(1)
		}
		p.Add(poly)
		if r.legend {
			p.Legend.Add(rect.Kind, poly)
		}
	}

	for _, ray := range s.Rays {
		if !ray.Finite() {
			continue
		}
		line, err := segmentLine(ray)
		if err != nil {
			return nil, layout.Bounds{}, fmt.Errorf("ray: %w", err)
		}
		line.LineStyle.Width = vg.Points(1)
		if ray.Dashed {
			line.LineStyle.Dashes = rayDashes
		}
		p.Add(line)
	}

	if s.Sample != nil && s.Sample.Finite() {
		line, err := segmentLine(*s.Sample)
		if err != nil {
			return nil, layout.Bounds{}, fmt.Errorf("sample: %w", err)
		}
		line.LineStyle.Width = vg.Points(sampleLineWidth)
		p.Add(line)
		if r.legend {
			p.Legend.Add(layout.KindSample, line)
		}
	}

	win := window(s.Bounds, p)

	if len(s.Annotation) > 0 {
		labels, err := annotation(s.Annotation, win)
		if err != nil {
			return nil, layout.Bounds{}, fmt.Errorf("annotation: %w", err)
		}
		p.Add(labels)
	}

	p.X.Min, p.X.Max = win.XMin, win.XMax
	p.Y.Min, p.Y.Max = win.YMin, win.YMax
	return p, win, nil
}

// window picks the visible range: the scene bounds when usable, else the
// range of whatever was drawn, else a small box around the origin.
func window(b layout.Bounds, p *plot.Plot) layout.Bounds {
	if b.Finite() {
		return b
	}
	auto := layout.Bounds{XMin: p.X.Min, XMax: p.X.Max, YMin: p.Y.Min, YMax: p.Y.Max}
	if auto.Finite() && auto.XMin < auto.XMax && auto.YMin < auto.YMax {
		return auto
	}
	return layout.Bounds{XMin: -layout.Margin, XMax: layout.Margin, YMin: 0, YMax: layout.Margin}
}

// annotation places the text block in the top left corner of the window.
func annotation(lines []string, win layout.Bounds) (*plotter.Labels, error) {
	x := win.XMin + 0.02*(win.XMax-win.XMin)
	y := win.YMax - 0.02*(win.YMax-win.YMin)
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{strings.Join(lines, "\n")},
	})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XLeft
		labels.TextStyle[i].YAlign = draw.YTop
	}
	return labels, nil
}

// size returns the canvas dimensions for an equal-aspect data area.
func (r *plotRenderer) size(win layout.Bounds) (vg.Length, vg.Length) {
	xr := math.Abs(win.XMax - win.XMin)
	yr := math.Abs(win.YMax - win.YMin)
	if xr == 0 || yr == 0 {
		return r.width, r.width * 2 / 3
	}
	aspect := min(yr/xr, maxAspect)
	h := (r.width-axisAllowance)*vg.Length(aspect) + axisAllowance
	return r.width, max(h, minHeight)
}

func rectXYs(r layout.Rect) plotter.XYs {
	c := r.Corners()
	xys := make(plotter.XYs, len(c))
	for i, pt := range c {
		xys[i] = plotter.XY{X: pt[0], Y: pt[1]}
	}
	return xys
}

func segmentLine(s layout.Segment) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: s.X1, Y: s.Y1}, {X: s.X2, Y: s.Y2}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = toColor(s.Color)
	return line, nil
}

func toColor(c layout.RGBA) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
