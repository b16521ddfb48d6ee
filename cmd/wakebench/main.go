// Command wakebench times WAKE key-exchange runs across a sweep of party
// counts and writes the results as CSV and, optionally, a PNG timing
// chart.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/anupsv/wake-darkpool/internal/benchreport"
	"github.com/anupsv/wake-darkpool/protocol/compilerbp"
	"github.com/anupsv/wake-darkpool/protocol/compilergm17"
	"github.com/anupsv/wake-darkpool/protocol/optimizedbp"
	"github.com/anupsv/wake-darkpool/protocol/optimizedgm17"
)

func main() {
	protocolName := flag.String("protocol", "compiler", "WAKE protocol family to benchmark (compiler, optimized)")
	backend := flag.String("backend", "bp", "proof backend to benchmark (bp, gm17)")
	minParties := flag.Int("min-parties", 3, "smallest party count in the sweep")
	maxParties := flag.Int("max-parties", 15, "largest party count in the sweep")
	step := flag.Int("step", 2, "party-count increment between sweep points")
	minBal := flag.Uint64("min-bal", 10, "minimum balance floor")
	upperbound := flag.Uint64("upperbound", math.MaxUint8, "range-proof/SNARK upperbound (must be 2^8-1, 2^16-1, 2^32-1, or 2^64-1)")
	csvPath := flag.String("csv", "", "CSV output file path (empty for stdout)")
	chartPath := flag.String("chart", "", "PNG chart output file path (empty to skip)")

	flag.Parse()

	run, err := resolveRunFunc(strings.ToLower(*protocolName), strings.ToLower(*backend), *minBal, *upperbound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var partyCounts []int
	for n := *minParties; n <= *maxParties; n += *step {
		partyCounts = append(partyCounts, n)
	}
	if len(partyCounts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: empty party-count sweep, check -min-parties/-max-parties/-step")
		os.Exit(1)
	}

	fmt.Printf("Running %s/%s WAKE key exchange over parties %v...\n", *protocolName, *backend, partyCounts)
	results := benchreport.Sweep(*protocolName, *backend, partyCounts, run)

	csvOut := os.Stdout
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating CSV output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		csvOut = f
	}
	if err := benchreport.WriteCSV(csvOut, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		os.Exit(1)
	}

	if *chartPath != "" {
		f, err := os.Create(*chartPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating chart output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := benchreport.WriteChart(f, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Benchmark completed successfully!")
}

func resolveRunFunc(protocolName, backend string, minBal, upperbound uint64) (benchreport.RunFunc, error) {
	switch {
	case protocolName == "compiler" && backend == "bp":
		return func(n int) (time.Duration, error) {
			balances := balancesFor(n, minBal)
			start := time.Now()
			_, err := compilerbp.RunKeyExchange(rand.Reader, n, minBal, upperbound, balances)
			return time.Since(start), err
		}, nil
	case protocolName == "compiler" && backend == "gm17":
		return func(n int) (time.Duration, error) {
			balances := balancesFor(n, minBal)
			start := time.Now()
			_, err := compilergm17.RunKeyExchange(rand.Reader, n, minBal, upperbound, balances)
			return time.Since(start), err
		}, nil
	case protocolName == "optimized" && backend == "bp":
		return func(n int) (time.Duration, error) {
			balances := balancesFor(n, minBal)
			start := time.Now()
			_, err := optimizedbp.RunKeyExchange(rand.Reader, n, minBal, upperbound, balances)
			return time.Since(start), err
		}, nil
	case protocolName == "optimized" && backend == "gm17":
		return func(n int) (time.Duration, error) {
			balances := balancesFor(n, minBal)
			start := time.Now()
			_, err := optimizedgm17.RunKeyExchange(rand.Reader, n, minBal, upperbound, balances)
			return time.Since(start), err
		}, nil
	default:
		return nil, fmt.Errorf("unknown protocol/backend combination: %s/%s (want compiler|optimized, bp|gm17)", protocolName, backend)
	}
}

func balancesFor(n int, minBal uint64) []uint64 {
	balances := make([]uint64, n)
	for i := range balances {
		balances[i] = minBal + uint64(i)
	}
	return balances
}
