package benchreport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Result is one (party count -> elapsed time) sample for a given protocol
// family and proof backend.
type Result struct {
	Protocol string
	Backend  string
	Parties  int
	Elapsed  time.Duration
	Err      error
}

// RunFunc runs one complete key exchange for n parties and returns how
// long it took.
type RunFunc func(n int) (time.Duration, error)

// Sweep runs run once for every party count in partyCounts, in order,
// and collects one Result per count. A run's error is recorded on its
// Result rather than aborting the sweep, so a single unsupported party
// count (e.g. too few for Burmester–Desmedt) doesn't lose the rest of
// the data.
func Sweep(protocol, backend string, partyCounts []int, run RunFunc) []Result {
	results := make([]Result, 0, len(partyCounts))
	for _, n := range partyCounts {
		elapsed, err := run(n)
		results = append(results, Result{
			Protocol: protocol,
			Backend:  backend,
			Parties:  n,
			Elapsed:  elapsed,
			Err:      err,
		})
	}
	return results
}

// WriteCSV writes results as "protocol,backend,parties,elapsed_ms,error"
// rows, one header row followed by one row per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"protocol", "backend", "parties", "elapsed_ms", "error"}); err != nil {
		return fmt.Errorf("benchreport: writing header: %w", err)
	}
	for _, r := range results {
		errStr := ""
		if r.Err != nil {
			errStr = r.Err.Error()
		}
		row := []string{
			r.Protocol,
			r.Backend,
			strconv.Itoa(r.Parties),
			strconv.FormatFloat(float64(r.Elapsed.Microseconds())/1000.0, 'f', 3, 64),
			errStr,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("benchreport: writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
