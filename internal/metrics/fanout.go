package metrics

import (
	"github.com/openfpga/slackline/internal/timing"
)

// CountClockFanouts counts, per launch clock domain, how many arrival
// and required tags reference it at source and sink nodes. The result
// is an approximate proxy for how many timing endpoints each clock
// drives: a weighting signal, not an exact netlist fan-out.
func CountClockFanouts(g timing.Graph, setup timing.SetupAnalyzer) map[timing.DomainID]int {
	fanouts := make(map[timing.DomainID]int)
	for _, node := range g.Nodes() {
		t := g.NodeType(node)
		if t != timing.NodeSource && t != timing.NodeSink {
			continue
		}
		for _, tag := range setup.SetupTags(node, timing.TagDataArrival) {
			fanouts[tag.Launch]++
		}
		for _, tag := range setup.SetupTags(node, timing.TagDataRequired) {
			fanouts[tag.Launch]++
		}
	}
	return fanouts
}
