package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	tui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/jondoveston/memtop/internal/config"
	"github.com/jondoveston/memtop/internal/monitor"
)

const (
	minPlotWidth  = 16
	minPlotHeight = 6

	// y-axis label column the termui plot reserves left of the data
	plotLabelWidth = 5
)

// RenderPlot draws the sample window as a line with point markers, sized
// width x height cells including the border
func RenderPlot(snap monitor.Snapshot, palette config.Palette, width, height int) string {
	width = max(width, minPlotWidth)
	height = max(height, minPlotHeight)
	rect := image.Rect(0, 0, width, height)
	buf := tui.NewBuffer(rect)

	values := plotValues(snap)
	top := math.Max(snap.Axis.Max, 1)
	for i, v := range values {
		values[i] = math.Min(v, top)
	}

	// the line and the markers come from the same points
	line := newPlotLayer(rect, values, top, palette)
	line.Title = " Memory used (MB) "
	line.PlotType = widgets.LineChart
	line.Marker = widgets.MarkerBraille
	line.LineColors = []tui.Color{termColor(palette.Line)}
	line.Draw(buf)

	dots := newPlotLayer(rect, values, top, palette)
	dots.Title = line.Title
	dots.PlotType = widgets.ScatterPlot
	dots.Marker = widgets.MarkerDot
	dots.DotMarkerRune = '●'
	dots.LineColors = []tui.Color{termColor(palette.Points)}
	dots.Draw(buf)

	return flatten(buf, rect, palette.Background)
}

func newPlotLayer(rect image.Rectangle, values []float64, top float64, palette config.Palette) *widgets.Plot {
	p := widgets.NewPlot()
	p.SetRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	p.Data = [][]float64{values}
	p.MaxVal = top
	p.ShowAxes = true
	p.AxesColor = termColor(palette.Axes)
	p.TitleStyle = tui.NewStyle(termColor(palette.Titles))
	p.BorderStyle = tui.NewStyle(termColor(palette.Axes))
	p.HorizontalScale = horizontalScale(rect.Dx(), len(values))
	return p
}

// horizontalScale spreads n points across the drawable width
func horizontalScale(width, n int) int {
	drawable := width - 2 - plotLabelWidth
	if n < 2 || drawable <= n {
		return 1
	}
	return max(drawable/(n-1), 1)
}

func plotValues(snap monitor.Snapshot) []float64 {
	values := make([]float64, len(snap.Points))
	for i, p := range snap.Points {
		values[i] = p.Value
	}
	return values
}

// flatten converts the termui cells into a lipgloss-styled string, one
// styled run per color change
func flatten(buf *tui.Buffer, rect image.Rectangle, background string) string {
	var out strings.Builder
	bg := lipColor(background)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		var run strings.Builder
		runColor := tui.ColorClear
		emit := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Background(bg)
			if runColor != tui.ColorClear {
				style = style.Foreground(lipgloss.Color(colorName(runColor)))
			}
			out.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cell := buf.GetCell(image.Pt(x, y))
			if cell.Style.Fg != runColor {
				emit()
				runColor = cell.Style.Fg
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			run.WriteRune(r)
		}
		emit()
		if y < rect.Max.Y-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func colorName(c tui.Color) string {
	return strconv.Itoa(int(c))
}
