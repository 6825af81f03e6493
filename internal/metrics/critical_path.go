package metrics

import (
	"math"

	"github.com/openfpga/slackline/internal/timing"
)

// FindLongestCriticalPath reduces the analyzer's per-domain-pair
// critical paths to the one with the maximum delay. ok is false when
// the analyzer reports no paths at all.
//
// A candidate with a NaN delay never displaces a real value, and a real
// value always displaces a NaN one: "any real value beats absent".
func FindLongestCriticalPath(setup timing.SetupAnalyzer) (timing.PathInfo, bool) {
	return reducePaths(setup.CriticalPaths(), func(best, cand timing.PathInfo) bool {
		if math.IsNaN(best.Delay) {
			return true
		}
		return cand.Delay > best.Delay
	})
}

// FindLeastSlackCriticalPath reduces the analyzer's per-domain-pair
// critical paths to the one with the minimum slack, with the same NaN
// replacement rule as FindLongestCriticalPath.
func FindLeastSlackCriticalPath(setup timing.SetupAnalyzer) (timing.PathInfo, bool) {
	return reducePaths(setup.CriticalPaths(), func(best, cand timing.PathInfo) bool {
		if math.IsNaN(best.Slack) {
			return true
		}
		return cand.Slack < best.Slack
	})
}

// reducePaths folds paths with the given replacement predicate.
func reducePaths(paths []timing.PathInfo, replace func(best, cand timing.PathInfo) bool) (timing.PathInfo, bool) {
	var best timing.PathInfo
	found := false
	for _, p := range paths {
		if !found || replace(best, p) {
			best = p
			found = true
		}
	}
	return best, found
}
