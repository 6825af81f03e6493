// Package timing defines the data model shared by the slackline engine
// and the interfaces of its external collaborators.
//
// The engine is a post-processing layer: a separate static timing
// analysis (STA) engine propagates arrival and required times through a
// timing graph and exposes, per node, per clock-domain-pair tags
// carrying slack values. This package declares that boundary (the
// Graph, SetupAnalyzer, HoldAnalyzer and Constraints interfaces) plus
// the value types (Tag, PathInfo, DomainPair) that flow across it.
//
// Everything here is an immutable snapshot for the duration of one
// analysis pass. The engine never mutates the graph or analyzer state
// and holds no locks; callers may fan out read-only queries across
// goroutines freely.
package timing
