package metrics

import (
	"github.com/openfpga/slackline/internal/timing"
)

// SetupTNS returns the setup Total Negative Slack: the sum of every
// negative slack tag over every logical output node. Non-negative
// slacks contribute nothing, so a clean circuit reports exactly 0.
func SetupTNS(g timing.Graph, setup timing.SetupAnalyzer) float64 {
	tns := 0.0
	for _, node := range g.LogicalOutputs() {
		for _, tag := range setup.SetupSlacks(node) {
			if tag.Time < 0 {
				tns += tag.Time
			}
		}
	}
	return tns
}

// SetupWNS returns the setup Worst Negative Slack: the most negative
// slack tag over every logical output node. The running minimum is
// seeded at 0 and only updated by negative values, so a circuit with no
// violation reports exactly 0.
func SetupWNS(g timing.Graph, setup timing.SetupAnalyzer) float64 {
	wns := 0.0
	for _, node := range g.LogicalOutputs() {
		for _, tag := range setup.SetupSlacks(node) {
			if tag.Time < 0 && tag.Time < wns {
				wns = tag.Time
			}
		}
	}
	return wns
}

// HoldTNS returns the hold Total Negative Slack over every logical
// output node.
func HoldTNS(g timing.Graph, hold timing.HoldAnalyzer) float64 {
	tns := 0.0
	for _, node := range g.LogicalOutputs() {
		for _, tag := range hold.HoldSlacks(node) {
			if tag.Time < 0 {
				tns += tag.Time
			}
		}
	}
	return tns
}

// HoldWNS returns the hold Worst Negative Slack over every logical
// output node, seeded at 0 like SetupWNS.
func HoldWNS(g timing.Graph, hold timing.HoldAnalyzer) float64 {
	wns := 0.0
	for _, node := range g.LogicalOutputs() {
		for _, tag := range hold.HoldSlacks(node) {
			if tag.Time < 0 && tag.Time < wns {
				wns = tag.Time
			}
		}
	}
	return wns
}

// NodeSetupSlack returns the setup slack at a single node for the given
// domain pair. ok is false when no tag for that pair reaches the node.
func NodeSetupSlack(setup timing.SetupAnalyzer, node timing.NodeID, pair timing.DomainPair) (float64, bool) {
	for _, tag := range setup.SetupSlacks(node) {
		if tag.Pair() == pair {
			return tag.Time, true
		}
	}
	return 0, false
}

// HoldWorstSlack returns the worst (minimum) hold slack over all
// logical output nodes for the given domain pair. ok is false when no
// path exists for the pair; callers must skip the pair rather than
// treat the zero value as a real worst case.
func HoldWorstSlack(g timing.Graph, hold timing.HoldAnalyzer, pair timing.DomainPair) (float64, bool) {
	worst := 0.0
	found := false
	for _, node := range g.LogicalOutputs() {
		for _, tag := range hold.HoldSlacks(node) {
			if tag.Pair() != pair {
				continue
			}
			if !found || tag.Time < worst {
				worst = tag.Time
				found = true
			}
		}
	}
	return worst, found
}
