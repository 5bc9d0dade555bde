package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	tui "github.com/gizak/termui/v3"
	"github.com/jondoveston/memtop/internal/config"
	"github.com/muesli/termenv"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// lineColors are the choices the color key cycles through
var lineColors = []string{"33", "39", "46", "208", "201", "226", "15"}

func nextLineColor(current string) string {
	for i, c := range lineColors {
		if c == current {
			return lineColors[(i+1)%len(lineColors)]
		}
	}
	return lineColors[0]
}

func ansiIndex(c string) int {
	n, err := strconv.Atoi(c)
	if err != nil || n < 0 || n > 255 {
		return -1
	}
	return n
}

func termColor(c string) tui.Color {
	n := ansiIndex(c)
	if n < 0 {
		return tui.ColorClear
	}
	return tui.Color(n)
}

func lipColor(c string) lipgloss.Color {
	return lipgloss.Color(c)
}

// rgbColor maps an ANSI-256 number onto the xterm palette for PNG output
func rgbColor(c string) drawing.Color {
	n := ansiIndex(c)
	if n < 0 {
		return drawing.Color{A: 255}
	}
	r, g, b := termenv.ConvertToRGB(termenv.ANSI256Color(n)).RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

func defaultPalette() config.Palette {
	return config.Palette{Line: "33", Points: "196", Axes: "250", Titles: "229", Background: "235"}
}
