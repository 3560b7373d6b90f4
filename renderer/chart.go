package renderer

import (
	"fmt"
	"io"

	"github.com/foliotrack/folio"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ValueChart writes a PNG line chart of a portfolio value series.
func ValueChart(title string, points []folio.ValuePoint, w io.Writer) error {
	if len(points) < 2 {
		return fmt.Errorf("not enough points to chart: %d", len(points))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Y.Label.Text = "Value"

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.At.Unix())
		xys[i].Y = pt.Value
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("building chart line: %w", err)
	}
	p.Add(plotter.NewGrid(), line)

	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

// PriceChart writes a PNG line chart of a price history series.
func PriceChart(title string, points []folio.PricePoint, w io.Writer) error {
	values := make([]folio.ValuePoint, len(points))
	for i, pt := range points {
		values[i] = folio.ValuePoint{At: pt.At, Value: pt.Price}
	}
	return ValueChart(title, values, w)
}
