package aa_composition

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoResidues is returned when there is nothing to draw.
var ErrNoResidues = errors.New("no valid residues to plot")

const (
	HydrophobicLabel = "Hydrophobic"
	HydrophilicLabel = "Hydrophilic"
)

// FrequencyBarChart draws one bar per residue code, in first-appearance order.
func FrequencyBarChart(c Composition, label string) (*plot.Plot, error) {
	codes := c.Codes()
	if len(codes) == 0 {
		return nil, ErrNoResidues
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s AminoAcids", label)
	p.X.Label.Text = "AminoAcid"
	p.Y.Label.Text = "Frequency"
	p.Y.Min = 0

	counts := make(plotter.Values, len(codes))
	names := make([]string, len(codes))
	for i, aa := range codes {
		counts[i] = float64(c.Frequencies[aa])
		names[i] = string(aa)
	}

	bars, err := plotter.NewBarChart(counts, vg.Points(14))
	if err != nil {
		return nil, fmt.Errorf("building bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	return p, nil
}

// HydropathyBoxPlot draws the hydrophobic and hydrophilic buckets side by side.
// An empty bucket keeps its axis label but gets no box.
func HydropathyBoxPlot(b Buckets, label string) (*plot.Plot, error) {
	if b.Len() == 0 {
		return nil, ErrNoResidues
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Hydropathy of %s", label)
	p.Y.Label.Text = "Hydropathy"
	p.Add(plotter.NewGrid())

	groups := []struct {
		values []float64
		fill   color.Color
	}{
		{b.Hydrophobic, color.RGBA{R: 255, G: 165, A: 255}},
		{b.Hydrophilic, color.RGBA{R: 100, G: 180, B: 255, A: 255}},
	}
	for i, g := range groups {
		if len(g.values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(g.values))
		if err != nil {
			return nil, fmt.Errorf("building box plot: %w", err)
		}
		box.FillColor = g.fill
		p.Add(box)
	}
	p.NominalX(HydrophobicLabel, HydrophilicLabel)
	p.X.Min, p.X.Max = -0.5, 1.5

	return p, nil
}

// RenderPNG encodes a plot as PNG bytes.
func RenderPNG(p *plot.Plot, width, height vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG renders a plot and writes it to path.
func SavePNG(p *plot.Plot, width, height vg.Length, path string) error {
	data, err := RenderPNG(p, width, height)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
