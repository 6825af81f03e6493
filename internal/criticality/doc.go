// Package criticality converts slack tags into a bounded [0, 1]
// criticality signal that placement and routing optimizers consume as a
// cost weight.
//
// The normalization follows the "relaxed per constraint" method of
//
//	M. Wainberg and V. Betz, "Robust Optimization of Multiple Timing
//	Constraints," IEEE TCAD, vol. 34, no. 12, pp. 1942-1953, Dec. 2015.
//	doi: 10.1109/TCAD.2015.2440316
//
// which handles the trade-off between timing constraints in multi-clock
// circuits. Unlike Wainberg, the relaxation happens as a post-processing
// step over already-computed slacks.
//
// A Calculator is built once per analysis pass from the per-domain-pair
// normalization data and then queried per pin inside optimizer hot
// loops; queries are O(number of domain pairs touching the pin) and
// read-only, so concurrent callers need no synchronization.
package criticality
