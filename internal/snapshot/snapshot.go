package snapshot

import (
	"github.com/openfpga/slackline/internal/timing"
)

// Snapshot is an immutable, in-memory timing analysis pass. It
// implements timing.Graph, timing.SetupAnalyzer, timing.HoldAnalyzer
// and timing.Constraints.
type Snapshot struct {
	name string

	domains   []timing.DomainID
	names     map[timing.DomainID]string
	virtual   map[timing.DomainID]bool
	setupCons map[timing.DomainPair]float64

	nodes          []timing.NodeID
	nodeTypes      map[timing.NodeID]timing.NodeType
	logicalOutputs []timing.NodeID

	setupSlacks    map[timing.NodeID][]timing.Tag
	holdSlacks     map[timing.NodeID][]timing.Tag
	setupArrivals  map[timing.NodeID][]timing.Tag
	setupRequireds map[timing.NodeID][]timing.Tag

	setupPaths []timing.PathInfo
}

// Name returns the snapshot's label, if the file carried one.
func (s *Snapshot) Name() string { return s.name }

// Nodes implements timing.Graph.
func (s *Snapshot) Nodes() []timing.NodeID { return s.nodes }

// NodeType implements timing.Graph.
func (s *Snapshot) NodeType(n timing.NodeID) timing.NodeType { return s.nodeTypes[n] }

// LogicalOutputs implements timing.Graph.
func (s *Snapshot) LogicalOutputs() []timing.NodeID { return s.logicalOutputs }

// SetupSlacks implements timing.SetupAnalyzer.
func (s *Snapshot) SetupSlacks(n timing.NodeID) []timing.Tag { return s.setupSlacks[n] }

// SetupTags implements timing.SetupAnalyzer.
func (s *Snapshot) SetupTags(n timing.NodeID, kind timing.TagKind) []timing.Tag {
	if kind == timing.TagDataArrival {
		return s.setupArrivals[n]
	}
	return s.setupRequireds[n]
}

// CriticalPaths implements timing.SetupAnalyzer.
func (s *Snapshot) CriticalPaths() []timing.PathInfo { return s.setupPaths }

// HoldSlacks implements timing.HoldAnalyzer.
func (s *Snapshot) HoldSlacks(n timing.NodeID) []timing.Tag { return s.holdSlacks[n] }

// ClockDomains implements timing.Constraints.
func (s *Snapshot) ClockDomains() []timing.DomainID { return s.domains }

// DomainName implements timing.Constraints.
func (s *Snapshot) DomainName(d timing.DomainID) string { return s.names[d] }

// SetupConstraint implements timing.Constraints.
func (s *Snapshot) SetupConstraint(launch, capture timing.DomainID) (float64, bool) {
	v, ok := s.setupCons[timing.DomainPair{Launch: launch, Capture: capture}]
	return v, ok
}

// IsVirtual implements timing.Constraints.
func (s *Snapshot) IsVirtual(d timing.DomainID) bool { return s.virtual[d] }
