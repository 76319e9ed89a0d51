package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/VSPaone/qbuilder"
)

// writeChart renders the shot histogram — or the analytic distribution when
// no shots were taken — as a standalone HTML bar chart.
func writeChart(path string, res qbuilder.Result) error {
	bar := charts.NewBar()

	series := "probability"
	if res.Counts != nil {
		series = "counts"
	}
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Measurement histogram",
			Subtitle: fmt.Sprintf("%d qubits · %d gates · %s", res.NumQubits, res.GateCount, series),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "basis state"}),
		charts.WithYAxisOpts(opts.YAxis{Name: series}),
	)

	var labels []string
	var data []opts.BarData
	if res.Counts != nil {
		keys := make([]string, 0, len(res.Counts))
		for k := range res.Counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			labels = append(labels, k)
			data = append(data, opts.BarData{Value: res.Counts[k]})
		}
	} else {
		for i, p := range res.Probabilities {
			labels = append(labels, qbuilder.BitString(i, res.NumQubits))
			data = append(data, opts.BarData{Value: p})
		}
	}
	bar.SetXAxis(labels).AddSeries(series, data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}
