// commitbench sweeps the commitment pipeline over a range of input sizes and
// renders the timing profile as an interactive HTML chart.
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/pflag"

	"hyrax-pcs/hyrax"
	"hyrax-pcs/prof"
)

type sweepPoint struct {
	logSize int
	bytes   int
	rows    int
	meanMS  float64
}

func main() {
	minLog := pflag.Int("min-log-size", 10, "smallest input size as log2(bytes)")
	maxLog := pflag.Int("max-log-size", 17, "largest input size as log2(bytes)")
	trials := pflag.Int("trials", 3, "timed runs per size")
	outputPath := pflag.String("output-html-filepath", "commitbench.html", "destination for the rendered chart")
	pflag.Parse()

	if *minLog > *maxLog {
		log.Fatalf("commitbench: --min-log-size %d exceeds --max-log-size %d", *minLog, *maxLog)
	}
	if *trials < 1 {
		log.Fatalf("commitbench: --trials must be at least 1, got %d", *trials)
	}

	seed := make([]byte, hyrax.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		log.Fatalf("commitbench: draw seed: %v", err)
	}

	points := make([]sweepPoint, 0, *maxLog-*minLog+1)
	for logSize := *minLog; logSize <= *maxLog; logSize++ {
		size := 1 << logSize
		data := make([]byte, size)
		if _, err := rand.Read(data); err != nil {
			log.Fatalf("commitbench: fill input: %v", err)
		}

		// Warm the generator cache outside the timed loop.
		if _, err := hyrax.ComputeCommitmentsBinaryOutputs(data[:1], seed); err != nil {
			log.Fatalf("commitbench: warmup: %v", err)
		}
		prof.SnapshotAndReset()

		var total time.Duration
		for trial := 0; trial < *trials; trial++ {
			start := time.Now()
			if _, err := hyrax.ComputeCommitmentsBinaryOutputs(data, seed); err != nil {
				log.Fatalf("commitbench: commit 2^%d bytes: %v", logSize, err)
			}
			total += time.Since(start)
		}
		mean := total / time.Duration(*trials)

		p := sweepPoint{
			logSize: logSize,
			bytes:   size,
			rows:    hyrax.RowCount(size, hyrax.DefaultRowLen),
			meanMS:  float64(mean.Microseconds()) / 1000.0,
		}
		points = append(points, p)
		fmt.Printf("2^%-2d bytes  %4d rows  mean %8.2f ms over %d trials\n",
			p.logSize, p.rows, p.meanMS, *trials)
		fmt.Println("phase totals across trials:")
		prof.Report(os.Stdout, prof.SnapshotAndReset())
	}

	if err := renderChart(*outputPath, points, *trials); err != nil {
		log.Fatalf("commitbench: %v", err)
	}
	fmt.Printf("chart written to %s\n", *outputPath)
}

func renderChart(path string, points []sweepPoint, trials int) error {
	page := components.NewPage().SetPageTitle("Hyrax Commitment Timing")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Commitment time vs. input size",
			Subtitle: fmt.Sprintf("mean of %d trials per size", trials),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "input size (log2 bytes)"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "time (ms)",
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)

	labels := make([]string, 0, len(points))
	items := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		labels = append(labels, fmt.Sprintf("2^%d", p.logSize))
		items = append(items, opts.LineData{Value: p.meanMS})
	}
	line.SetXAxis(labels)
	line.AddSeries("commit", items,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
	)

	page.AddCharts(line)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
