// Package report assembles the circuit-level timing metrics into a
// structured summary and renders it as text.
//
// Build is the pure computation phase: it returns a Report value and
// touches no output. Render is the emission phase: it writes the fixed
// field set and ordering that downstream tools scrape. The two are kept
// separate so the numbers are testable without capturing output, and
// the text contract is pinned independently by golden files.
package report
