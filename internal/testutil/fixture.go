// Package testutil provides deterministic in-memory timing fixtures
// for tests: a Fixture implements every external-collaborator interface
// the engine consumes, built up programmatically instead of loaded from
// a snapshot file.
package testutil

import (
	"github.com/openfpga/slackline/internal/timing"
)

// Fixture is a hand-built timing analysis pass. It implements
// timing.Graph, timing.SetupAnalyzer, timing.HoldAnalyzer and
// timing.Constraints. The zero value is not usable; call NewFixture.
type Fixture struct {
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

	paths []timing.PathInfo
}

// NewFixture creates an empty fixture.
func NewFixture() *Fixture {
	return &Fixture{
		names:          make(map[timing.DomainID]string),
		virtual:        make(map[timing.DomainID]bool),
		setupCons:      make(map[timing.DomainPair]float64),
		nodeTypes:      make(map[timing.NodeID]timing.NodeType),
		setupSlacks:    make(map[timing.NodeID][]timing.Tag),
		holdSlacks:     make(map[timing.NodeID][]timing.Tag),
		setupArrivals:  make(map[timing.NodeID][]timing.Tag),
		setupRequireds: make(map[timing.NodeID][]timing.Tag),
	}
}

// AddDomain registers a clock domain. Returns the fixture for chaining.
func (f *Fixture) AddDomain(id timing.DomainID, name string, virtual bool) *Fixture {
	f.domains = append(f.domains, id)
	f.names[id] = name
	f.virtual[id] = virtual
	return f
}

// AddNode registers a graph node.
func (f *Fixture) AddNode(id timing.NodeID, t timing.NodeType, logicalOutput bool) *Fixture {
	f.nodes = append(f.nodes, id)
	f.nodeTypes[id] = t
	if logicalOutput {
		f.logicalOutputs = append(f.logicalOutputs, id)
	}
	return f
}

// AddSetupSlack attaches a setup slack tag to a node.
func (f *Fixture) AddSetupSlack(node timing.NodeID, launch, capture timing.DomainID, slack float64) *Fixture {
	f.setupSlacks[node] = append(f.setupSlacks[node], timing.Tag{Launch: launch, Capture: capture, Time: slack})
	return f
}

// AddHoldSlack attaches a hold slack tag to a node.
func (f *Fixture) AddHoldSlack(node timing.NodeID, launch, capture timing.DomainID, slack float64) *Fixture {
	f.holdSlacks[node] = append(f.holdSlacks[node], timing.Tag{Launch: launch, Capture: capture, Time: slack})
	return f
}

// AddSetupTag attaches an arrival or required tag to a node.
func (f *Fixture) AddSetupTag(node timing.NodeID, kind timing.TagKind, launch, capture timing.DomainID, t float64) *Fixture {
	tag := timing.Tag{Launch: launch, Capture: capture, Time: t}
	if kind == timing.TagDataArrival {
		f.setupArrivals[node] = append(f.setupArrivals[node], tag)
	} else {
		f.setupRequireds[node] = append(f.setupRequireds[node], tag)
	}
	return f
}

// AddPath records a per-domain-pair critical path.
func (f *Fixture) AddPath(launch, capture timing.DomainID, delay, slack float64) *Fixture {
	f.paths = append(f.paths, timing.PathInfo{Launch: launch, Capture: capture, Delay: delay, Slack: slack})
	return f
}

// SetConstraint records a per-pair setup constraint.
func (f *Fixture) SetConstraint(launch, capture timing.DomainID, value float64) *Fixture {
	f.setupCons[timing.DomainPair{Launch: launch, Capture: capture}] = value
	return f
}

// Nodes implements timing.Graph.
func (f *Fixture) Nodes() []timing.NodeID { return f.nodes }

// NodeType implements timing.Graph.
func (f *Fixture) NodeType(n timing.NodeID) timing.NodeType { return f.nodeTypes[n] }

// LogicalOutputs implements timing.Graph.
func (f *Fixture) LogicalOutputs() []timing.NodeID { return f.logicalOutputs }

// SetupSlacks implements timing.SetupAnalyzer.
func (f *Fixture) SetupSlacks(n timing.NodeID) []timing.Tag { return f.setupSlacks[n] }

// SetupTags implements timing.SetupAnalyzer.
func (f *Fixture) SetupTags(n timing.NodeID, kind timing.TagKind) []timing.Tag {
	if kind == timing.TagDataArrival {
		return f.setupArrivals[n]
	}
	return f.setupRequireds[n]
}

// CriticalPaths implements timing.SetupAnalyzer.
func (f *Fixture) CriticalPaths() []timing.PathInfo { return f.paths }

// HoldSlacks implements timing.HoldAnalyzer.
func (f *Fixture) HoldSlacks(n timing.NodeID) []timing.Tag { return f.holdSlacks[n] }

// ClockDomains implements timing.Constraints.
func (f *Fixture) ClockDomains() []timing.DomainID { return f.domains }

// DomainName implements timing.Constraints.
func (f *Fixture) DomainName(d timing.DomainID) string { return f.names[d] }

// SetupConstraint implements timing.Constraints.
func (f *Fixture) SetupConstraint(launch, capture timing.DomainID) (float64, bool) {
	v, ok := f.setupCons[timing.DomainPair{Launch: launch, Capture: capture}]
	return v, ok
}

// IsVirtual implements timing.Constraints.
func (f *Fixture) IsVirtual(d timing.DomainID) bool { return f.virtual[d] }
