package ui

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jondoveston/memtop/internal/config"
	"github.com/jondoveston/memtop/internal/monitor"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	exportWidth  = 1024
	exportHeight = 480
)

// xTicks places a tick every maxSample/TickSpacing(maxSample) samples,
// always including both ends of the window
func xTicks(maxSample int) ([]chart.Tick, error) {
	spacing, err := monitor.TickSpacing(maxSample)
	if err != nil {
		return nil, err
	}
	step := maxSample / spacing
	var ticks []chart.Tick
	for i := 0; i <= maxSample; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
	}
	return ticks, nil
}

// ExportPNG renders the snapshot as a PNG chart onto w
func ExportPNG(w io.Writer, snap monitor.Snapshot, palette config.Palette) error {
	if len(snap.Points) < 2 {
		return fmt.Errorf("need at least 2 samples to chart, have %d: %w", len(snap.Points), monitor.ErrInvalidArgument)
	}
	ticks, err := xTicks(snap.MaxSample)
	if err != nil {
		return err
	}

	xs := make([]float64, len(snap.Points))
	ys := make([]float64, len(snap.Points))
	for i, p := range snap.Points {
		xs[i] = float64(p.Index)
		ys[i] = p.Value
	}

	top := snap.Axis.Max
	if top <= snap.Axis.Min {
		top = snap.Axis.Min + 1
	}

	axisStyle := chart.Style{
		StrokeColor: rgbColor(palette.Axes),
		FontColor:   rgbColor(palette.Axes),
	}
	ch := chart.Chart{
		Title:      "Memory used",
		TitleStyle: chart.Style{FontColor: rgbColor(palette.Titles)},
		Width:      exportWidth,
		Height:     exportHeight,
		Background: chart.Style{
			FillColor: rgbColor(palette.Background),
			Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: rgbColor(palette.Background)},
		XAxis: chart.XAxis{
			Name:      "Sample",
			NameStyle: chart.Style{FontColor: rgbColor(palette.Titles)},
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: 0, Max: float64(snap.MaxSample)},
			Ticks:     ticks,
		},
		YAxis: chart.YAxis{
			Name:      "Memory used (MB)",
			NameStyle: chart.Style{FontColor: rgbColor(palette.Titles)},
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: snap.Axis.Min, Max: top},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Memory used",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 2,
					StrokeColor: rgbColor(palette.Line),
					DotWidth:    4,
					DotColor:    rgbColor(palette.Points),
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// ExportFile writes the chart to a timestamped PNG in dir and returns its path
func ExportFile(dir string, snap monitor.Snapshot, palette config.Palette, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, "memtop-"+now.Format("20060102-150405")+".png")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := ExportPNG(f, snap, palette); err != nil {
		os.Remove(path)
		return "", err
	}
	log.Printf("Exported chart to %s", path)
	return path, nil
}
