package criticality

import (
	"github.com/openfpga/slackline/internal/metrics"
	"github.com/openfpga/slackline/internal/timing"
)

// RoundOffTolerance is the allowable floating-point round-off when
// checking that a computed criticality lies in [0, 1]. Values inside
// the tolerance are clamped; values outside it indicate a logic error
// upstream and fail the pass.
const RoundOffTolerance = 1e-4

// Normalization carries the per-domain-pair data the relaxed
// criticality formula needs, precomputed once per analysis pass.
// Both maps must contain an entry for every domain pair appearing in
// any tag handed to the Calculator; a missing entry is a pipeline bug,
// not a runtime condition.
//
// The maps are treated as immutable for the pass's duration even though
// they are read from many concurrent criticality calls.
type Normalization struct {
	// MaxReq is the maximum data required time per domain pair.
	MaxReq map[timing.DomainPair]float64

	// WorstSlack is the most negative slack per domain pair.
	WorstSlack map[timing.DomainPair]float64
}

// Calculator computes relaxed criticality values against one pass's
// normalization data.
type Calculator struct {
	norm Normalization
}

// NewCalculator creates a Calculator over the given normalization data.
func NewCalculator(norm Normalization) *Calculator {
	return &Calculator{norm: norm}
}

// Criticality returns the worst (maximum) criticality over the given
// slack tags, the pessimistic merge: a point critical on any one
// domain pair is reported at that criticality regardless of the others.
// 0 means not on any critical path; 1 means the tag defines the current
// worst slack of its domain pair.
//
// For each tag, if the pair's worst slack is negative both the slack
// and the maximum required time are shifted up by its magnitude. The
// shift keeps the denominator positive and bounds the result to [0, 1]
// even for an already-violated domain.
func (c *Calculator) Criticality(tags []timing.Tag) (float64, error) {
	maxCrit := 0.0
	for _, tag := range tags {
		pair := tag.Pair()

		maxReq, ok := c.norm.MaxReq[pair]
		if !ok {
			return 0, metrics.NewContractError(metrics.ErrCodeMissingNormalization,
				"no max required time for domain pair (%d -> %d)", pair.Launch, pair.Capture)
		}
		worstSlack, ok := c.norm.WorstSlack[pair]
		if !ok {
			return 0, metrics.NewContractError(metrics.ErrCodeMissingNormalization,
				"no worst slack for domain pair (%d -> %d)", pair.Launch, pair.Capture)
		}

		slack := tag.Time
		if worstSlack < 0 {
			shift := -worstSlack
			slack += shift
			maxReq += shift
		}

		crit := 1.0 - (slack / maxReq)

		if crit < -RoundOffTolerance || crit > 1.0+RoundOffTolerance {
			return 0, metrics.NewContractError(metrics.ErrCodeCriticalityRange,
				"criticality %g for domain pair (%d -> %d) outside [0, 1]", crit, pair.Launch, pair.Capture)
		}

		// Correct round-off.
		if crit < 0 {
			crit = 0
		}
		if crit > 1 {
			crit = 1
		}

		if crit > maxCrit {
			maxCrit = crit
		}
	}
	return maxCrit, nil
}
