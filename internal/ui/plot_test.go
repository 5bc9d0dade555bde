package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jondoveston/memtop/internal/monitor"
)

func TestRenderPlot(t *testing.T) {
	mon, err := monitor.New(&fakeProvider{}, 10, time.Second, monitor.HighestObserved)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		mon.Tick(context.Background())
	}

	tests := []struct {
		name          string
		width, height int
	}{
		{"regular", 80, 20},
		{"below minimum", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderPlot(mon.Snapshot(), defaultPalette(), tt.width, tt.height)
			wantW, wantH := max(tt.width, minPlotWidth), max(tt.height, minPlotHeight)
			if h := lipgloss.Height(out); h != wantH {
				t.Errorf("height = %d, want %d", h, wantH)
			}
			if w := lipgloss.Width(out); w != wantW {
				t.Errorf("width = %d, want %d", w, wantW)
			}
			if !strings.Contains(out, "●") {
				t.Error("no point markers drawn")
			}
		})
	}
}

func TestHorizontalScale(t *testing.T) {
	tests := []struct {
		width, n, want int
	}{
		{80, 21, 3},
		{80, 51, 1},
		{20, 21, 1},
		{80, 1, 1},
	}
	for _, tt := range tests {
		if got := horizontalScale(tt.width, tt.n); got != tt.want {
			t.Errorf("horizontalScale(%d, %d) = %d, want %d", tt.width, tt.n, got, tt.want)
		}
	}
}

func TestColors(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"9", 255, 0, 0},
		{"196", 255, 0, 0},
		{"33", 0, 135, 255},
		{"232", 8, 8, 8},
		{"255", 238, 238, 238},
		{"blue", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := rgbColor(tt.in)
			if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
				t.Errorf("rgbColor(%q) = %+v, want %d,%d,%d", tt.in, c, tt.r, tt.g, tt.b)
			}
		})
	}
	if nextLineColor("33") != "39" || nextLineColor("nope") != lineColors[0] {
		t.Error("line color cycle broken")
	}
	if nextLineColor(lineColors[len(lineColors)-1]) != lineColors[0] {
		t.Error("line color cycle does not wrap")
	}
}
