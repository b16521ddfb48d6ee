// Package benchreport times a WAKE key-exchange run across a sweep of
// party counts and writes the results as CSV and as a PNG timing chart.
// It is the thin collaborator spec.md §1 lists as out of scope ("thin
// collaborators, specified only via the interfaces they expose"), carried
// here as the supplemented benchmarking harness SPEC_FULL.md's
// SUPPLEMENTED FEATURES section calls for, grounded on the teacher's
// cmd/bench + wcharczuk/go-chart pairing.
package benchreport
