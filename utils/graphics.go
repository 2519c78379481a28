package utils

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type ColorName uint8

const (
	Blue ColorName = iota
	Red
	Green
	Black
	Orange
	Purple
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name % (Purple + 1) {
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 255}
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 50, A: 255}
	case Green:
		c = color.RGBA{R: 25, G: 160, B: 25, A: 255}
	case Black:
		c = color.RGBA{A: 255}
	case Orange:
		c = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	case Purple:
		c = color.RGBA{R: 128, G: 0, B: 160, A: 255}
	}
	return
}

// ArraysToXYs pairs two arrays into plot points, dropping points where either coordinate is not finite
func ArraysToXYs(r1, r2 []float64, scaleO ...float64) (xys plotter.XYs) {
	var (
		scale float64 = 1
	)
	if len(scaleO) > 0 {
		scale = scaleO[0]
	}
	xys = make(plotter.XYs, 0, len(r1))
	for i := range r1 {
		x, y := r1[i]*scale, r2[i]*scale
		if math.IsInf(x, 0) || math.IsNaN(x) || math.IsInf(y, 0) || math.IsNaN(y) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return
}

type LineChart struct {
	Plot   *plot.Plot
	series int
}

func NewLineChart(title, xLabel, yLabel string) (lc *LineChart) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	lc = &LineChart{Plot: p}
	return
}

// AddSeries draws f over x, optionally clipping f to [fmin, fmax] so divergent ratios do not flatten the chart
func (lc *LineChart) AddSeries(lineName string, x, f []float64, fLimits ...float64) (err error) {
	if len(fLimits) == 2 {
		clipped := make([]float64, len(f))
		for i, v := range f {
			if v < fLimits[0] || v > fLimits[1] {
				v = math.NaN()
			}
			clipped[i] = v
		}
		f = clipped
	}
	xys := ArraysToXYs(x, f)
	if len(xys) == 0 {
		return fmt.Errorf("series %s has no finite points", lineName)
	}
	var line *plotter.Line
	if line, err = plotter.NewLine(xys); err != nil {
		return
	}
	line.Color = GetColor(ColorName(lc.series))
	line.Width = vg.Points(1.5)
	lc.Plot.Add(line)
	lc.Plot.Legend.Add(lineName, line)
	lc.series++
	return
}

// Save writes the chart, the format follows the file extension (png, svg, pdf, ...)
func (lc *LineChart) Save(fileName string, widthInches, heightInches float64) error {
	return lc.Plot.Save(vg.Length(widthInches)*vg.Inch, vg.Length(heightInches)*vg.Inch, fileName)
}
