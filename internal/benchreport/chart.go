package benchreport

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// WriteChart renders results as a party-count-vs-elapsed-milliseconds
// line chart, one series per (protocol, backend) pair present in results,
// and writes it as a PNG to w. Failed runs (Result.Err != nil) are
// excluded from the plotted points but not from the underlying data the
// caller also wrote via WriteCSV.
func WriteChart(w io.Writer, results []Result) error {
	bySeries := map[string]*chart.ContinuousSeries{}
	var order []string

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		key := fmt.Sprintf("%s/%s", r.Protocol, r.Backend)
		s, ok := bySeries[key]
		if !ok {
			s = &chart.ContinuousSeries{Name: key}
			bySeries[key] = s
			order = append(order, key)
		}
		s.XValues = append(s.XValues, float64(r.Parties))
		s.YValues = append(s.YValues, float64(r.Elapsed.Microseconds())/1000.0)
	}

	series := make([]chart.Series, 0, len(order))
	for _, key := range order {
		series = append(series, *bySeries[key])
	}

	graph := chart.Chart{
		Title:  "WAKE key exchange timing",
		XAxis:  chart.XAxis{Name: "parties"},
		YAxis:  chart.YAxis{Name: "elapsed (ms)"},
		Series: series,
	}

	return graph.Render(chart.PNG, w)
}
