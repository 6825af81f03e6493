package report

import (
	"github.com/openfpga/slackline/internal/metrics"
	"github.com/openfpga/slackline/internal/timing"
)

// buildGeomeans computes the multi-clock aggregate statistics from the
// intra-domain critical paths, excluding virtual clocks.
//
// Each delay is weighted by its launch domain's clock fanout; weights
// are normalized to sum to the number of contributing domains before
// the geometric mean is taken, so equal fanouts reduce to the
// unweighted geomean.
//
// Returns nil (no error) when no non-virtual intra-domain path
// contributes; the report omits the lines rather than computing a
// geomean of an empty set.
func buildGeomeans(g timing.Graph, constraints timing.Constraints, setup timing.SetupAnalyzer, paths []timing.PathInfo) (*GeomeanSummary, error) {
	fanouts := metrics.CountClockFanouts(g, setup)

	var cpds []float64
	var pathFanouts []float64
	totalFanout := 0.0
	for _, p := range paths {
		if !p.Pair().Intra() || constraints.IsVirtual(p.Launch) {
			continue
		}

		fanout, ok := fanouts[p.Launch]
		if !ok {
			return nil, metrics.NewContractError(metrics.ErrCodeMissingFanout,
				"no clock fanout count for domain %q", constraints.DomainName(p.Launch))
		}

		cpds = append(cpds, p.Delay)
		pathFanouts = append(pathFanouts, float64(fanout))
		totalFanout += float64(fanout)
	}
	if len(cpds) == 0 {
		return nil, nil
	}

	geomean, _ := metrics.Geomean(cpds)

	weighted := make([]float64, len(cpds))
	n := float64(len(cpds))
	for i, cpd := range cpds {
		weighted[i] = cpd * pathFanouts[i] * n / totalFanout
	}
	weightedGeomean, _ := metrics.Geomean(weighted)

	return &GeomeanSummary{
		IntraDomainCPD:         geomean,
		WeightedIntraDomainCPD: weightedGeomean,
	}, nil
}
