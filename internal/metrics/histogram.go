package metrics

import (
	"math"
	"sort"

	"github.com/openfpga/slackline/internal/timing"
)

// HistogramBucket is one equal-width bin of a slack distribution. A
// value v belongs to the bucket when v <= Max and v > the previous
// bucket's Max; the buckets form a contiguous partition of the observed
// [min, max] slack range.
type HistogramBucket struct {
	Min   float64
	Max   float64
	Count int
}

// SetupSlackHistogram bins the setup slack distribution over all
// logical output nodes into numBins equal-width buckets.
func SetupSlackHistogram(g timing.Graph, setup timing.SetupAnalyzer, numBins int) ([]HistogramBucket, error) {
	return slackHistogram(g, numBins, setup.SetupSlacks)
}

// HoldSlackHistogram bins the hold slack distribution over all logical
// output nodes into numBins equal-width buckets.
func HoldSlackHistogram(g timing.Graph, hold timing.HoldAnalyzer, numBins int) ([]HistogramBucket, error) {
	return slackHistogram(g, numBins, hold.HoldSlacks)
}

// slackHistogram scans the tag stream twice: once to size the buckets
// and once to count values into them.
func slackHistogram(g timing.Graph, numBins int, slacks func(timing.NodeID) []timing.Tag) ([]HistogramBucket, error) {
	if numBins < 1 {
		return nil, NewContractError(ErrCodeZeroBins, "histogram requires at least one bin, got %d", numBins)
	}

	minSlack := math.Inf(1)
	maxSlack := math.Inf(-1)
	total := 0
	for _, node := range g.LogicalOutputs() {
		for _, tag := range slacks(node) {
			minSlack = math.Min(minSlack, tag.Time)
			maxSlack = math.Max(maxSlack, tag.Time)
			total++
		}
	}
	if total == 0 {
		return nil, nil
	}

	binSize := (maxSlack - minSlack) / float64(numBins)
	histogram := make([]HistogramBucket, 0, numBins)
	bucketMin := minSlack
	for i := 0; i < numBins; i++ {
		histogram = append(histogram, HistogramBucket{Min: bucketMin, Max: bucketMin + binSize})
		bucketMin += binSize
	}

	// Repeated addition of binSize drifts, so pin the last bucket's
	// upper edge to the exact observed maximum.
	histogram[numBins-1].Max = maxSlack

	for _, node := range g.LogicalOutputs() {
		for _, tag := range slacks(node) {
			// First bucket whose upper edge is >= the slack. When all
			// slacks are identical every bucket collapses to [s, s] and
			// the search resolves to bucket 0.
			i := sort.Search(len(histogram), func(i int) bool {
				return histogram[i].Max >= tag.Time
			})
			if i == len(histogram) {
				return nil, NewContractError(ErrCodeBucketUnresolved,
					"slack %g outside every bucket [%g, %g]", tag.Time, minSlack, maxSlack)
			}
			histogram[i].Count++
		}
	}

	return histogram, nil
}
