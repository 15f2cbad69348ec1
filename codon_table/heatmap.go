package codon_table

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// matrixGrid adapts a row-major matrix to plotter.GridXYZ. Row 0 of the
// matrix is drawn at the top of the figure.
type matrixGrid struct {
	data [][]float64
}

func (g matrixGrid) Dims() (c, r int)   { return len(g.data[0]), len(g.data) }
func (g matrixGrid) Z(c, r int) float64 { return g.data[len(g.data)-1-r][c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// axisTicks places one labeled tick per row or column. When topDown is set
// the labels run top to bottom, matching matrixGrid's row flip.
func axisTicks(labels []string, topDown bool) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(labels))
	for i, label := range labels {
		value := float64(i)
		if topDown {
			value = float64(len(labels) - 1 - i)
		}
		ticks[i] = plot.Tick{Value: value, Label: label}
	}
	return plot.ConstantTicks(ticks)
}

// GenerateHistoricalHeatmapSVG renders the simplified 4x4 base-pairing panel.
func GenerateHistoricalHeatmapSVG(matrix [][]float64) (string, error) {
	p := plot.New()
	p.Title.Text = "Historical Understanding of RNA Codons (1960s)\nSimple Base Pairing Model"
	p.X.Label.Text = "Second Base"
	p.Y.Label.Text = "First Base"

	h := plotter.NewHeatMap(matrixGrid{matrix}, palette.Heat(12, 255))
	p.Add(h)

	p.X.Tick.Marker = axisTicks(BaseLabels(), false)
	p.Y.Tick.Marker = axisTicks(BaseLabels(), true)

	// Write to SVG
	var buf bytes.Buffer
	writer, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateCodonHeatmapSVG renders the complete 64-codon table. Cell shading
// follows the enumeration index, so the figure doubles as a lookup chart.
func GenerateCodonHeatmapSVG(matrix [][]float64, colLabels []string) (string, error) {
	if len(matrix) == 0 || len(matrix[0]) != len(colLabels) {
		return "", fmt.Errorf("matrix has %d columns but %d labels were given", len(matrix[0]), len(colLabels))
	}

	p := plot.New()
	p.Title.Text = "Current Understanding of RNA Codons\nComplete 64 Codon Model"
	p.X.Label.Text = "Second + Third Base"
	p.Y.Label.Text = "First Base"

	h := plotter.NewHeatMap(matrixGrid{matrix}, palette.Heat(64, 255))
	p.Add(h)

	p.X.Tick.Marker = axisTicks(colLabels, false)
	p.Y.Tick.Marker = axisTicks(BaseLabels(), true)

	var buf bytes.Buffer
	writer, err := p.WriterTo(12*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
