package benchreport

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSweepRecordsErrorsWithoutAborting(t *testing.T) {
	calls := 0
	results := Sweep("compiler", "bp", []int{2, 3, 4}, func(n int) (time.Duration, error) {
		calls++
		if n < 3 {
			return 0, errors.New("too few parties")
		}
		return time.Duration(n) * time.Millisecond, nil
	})

	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if results[0].Err == nil {
		t.Fatalf("expected an error recorded for n=2")
	}
	if results[1].Err != nil || results[2].Err != nil {
		t.Fatalf("expected no error recorded for n=3,4")
	}
}

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{Protocol: "compiler", Backend: "bp", Parties: 10, Elapsed: 12 * time.Millisecond},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "compiler,bp,10,12.000,") {
		t.Fatalf("unexpected CSV output: %q", out)
	}
}

func TestWriteChart(t *testing.T) {
	results := []Result{
		{Protocol: "compiler", Backend: "bp", Parties: 3, Elapsed: 1 * time.Millisecond},
		{Protocol: "compiler", Backend: "bp", Parties: 5, Elapsed: 2 * time.Millisecond},
	}
	var buf bytes.Buffer
	if err := WriteChart(&buf, results); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty PNG output")
	}
}
