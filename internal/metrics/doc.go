// Package metrics turns per-node slack tags into circuit-level timing
// quality metrics: critical-path reductions, worst and total negative
// slack, slack histograms, and clock fanout counts.
//
// Every function is a pure reduction over the read-only analyzer and
// graph views; nothing here keeps state between calls, so callers may
// run reductions for different domain pairs or analyses concurrently.
package metrics
