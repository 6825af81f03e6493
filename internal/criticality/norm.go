package criticality

import (
	"github.com/openfpga/slackline/internal/timing"
)

// BuildNormalization derives one pass's normalization data from the
// setup analysis results: per domain pair, the maximum data required
// time and the most negative slack over all logical output nodes.
//
// Call this once per analysis pass, before any Criticality queries;
// the returned maps must not be mutated while a Calculator reads them.
func BuildNormalization(g timing.Graph, setup timing.SetupAnalyzer) Normalization {
	norm := Normalization{
		MaxReq:     make(map[timing.DomainPair]float64),
		WorstSlack: make(map[timing.DomainPair]float64),
	}

	for _, node := range g.LogicalOutputs() {
		for _, tag := range setup.SetupTags(node, timing.TagDataRequired) {
			pair := tag.Pair()
			if req, ok := norm.MaxReq[pair]; !ok || tag.Time > req {
				norm.MaxReq[pair] = tag.Time
			}
		}
		for _, tag := range setup.SetupSlacks(node) {
			pair := tag.Pair()
			if worst, ok := norm.WorstSlack[pair]; !ok || tag.Time < worst {
				norm.WorstSlack[pair] = tag.Time
			}
		}
	}

	return norm
}
