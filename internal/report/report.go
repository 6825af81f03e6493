package report

import (
	"github.com/openfpga/slackline/internal/metrics"
	"github.com/openfpga/slackline/internal/timing"
)

// PairValue is one per-domain-pair line of the report: a delay or a
// slack (in seconds) together with the display names of the pair.
type PairValue struct {
	Pair        timing.DomainPair
	LaunchName  string
	CaptureName string
	Value       float64
}

// GeomeanSummary holds the multi-clock aggregate statistics: the
// unweighted and fanout-weighted geometric means of the non-virtual
// intra-domain critical-path periods, in seconds.
type GeomeanSummary struct {
	IntraDomainCPD         float64
	WeightedIntraDomainCPD float64
}

// SetupSummary is the setup-timing half of the report.
type SetupSummary struct {
	// CriticalPath is the least-slack critical path. HasCriticalPath is
	// false when the analyzer saw no paths at all.
	CriticalPath    timing.PathInfo
	HasCriticalPath bool

	// ShowFmax is set when exactly one clock domain exists; Fmax is
	// only meaningful for a single-clock circuit.
	ShowFmax bool

	WNS float64
	TNS float64

	Histogram []metrics.HistogramBucket

	// MultiClock gates the per-domain-pair sections below.
	MultiClock bool

	IntraCPDs        []PairValue
	InterCPDs        []PairValue
	IntraWorstSlacks []PairValue
	InterWorstSlacks []PairValue

	// Geomean is nil when fewer than one non-virtual intra-domain path
	// contributes; the rendered report omits those lines entirely.
	Geomean *GeomeanSummary
}

// HoldSummary is the hold-timing half of the report.
type HoldSummary struct {
	WNS float64
	TNS float64

	Histogram []metrics.HistogramBucket

	MultiClock bool

	// Worst hold slacks per domain pair. Pairs with no path are already
	// skipped; every entry here is real.
	IntraWorstSlacks []PairValue
	InterWorstSlacks []PairValue
}

// Report is the full structured timing summary for one analysis pass.
type Report struct {
	Setup SetupSummary
	Hold  HoldSummary
}
