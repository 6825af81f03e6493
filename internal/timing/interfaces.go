package timing

// Graph is the read-only view of the timing graph the engine consumes.
// Implemented by the external STA engine (or by snapshot fixtures in
// tests and the CLI).
type Graph interface {
	// Nodes enumerates every node in the graph.
	Nodes() []NodeID

	// NodeType returns the classification of a node.
	NodeType(NodeID) NodeType

	// LogicalOutputs enumerates the nodes at which slack is measured
	// (timing path endpoints).
	LogicalOutputs() []NodeID
}

// SetupAnalyzer exposes the results of a setup (long-path) timing
// analysis. One analysis pass produces one analyzer; all methods are
// read-only and safe for concurrent use.
type SetupAnalyzer interface {
	// SetupSlacks returns the setup slack tags at a node, one per
	// active domain pair reaching it.
	SetupSlacks(NodeID) []Tag

	// SetupTags returns the arrival or required tags at a node.
	SetupTags(NodeID, TagKind) []Tag

	// CriticalPaths returns the per-domain-pair critical paths for the
	// whole circuit. One entry per constrained domain pair with at
	// least one path.
	CriticalPaths() []PathInfo
}

// HoldAnalyzer exposes the results of a hold (short-path) timing
// analysis.
type HoldAnalyzer interface {
	// HoldSlacks returns the hold slack tags at a node.
	HoldSlacks(NodeID) []Tag
}

// Constraints is the read-only view of the timing constraint set.
type Constraints interface {
	// ClockDomains enumerates all constrained clock domains.
	ClockDomains() []DomainID

	// DomainName returns the display name of a domain.
	DomainName(DomainID) string

	// SetupConstraint returns the setup constraint between two domains,
	// in seconds. ok is false when the pair is unconstrained.
	SetupConstraint(launch, capture DomainID) (value float64, ok bool)

	// IsVirtual reports whether the domain is a virtual clock (no
	// physical source). Virtual clocks are excluded from the
	// multi-clock aggregate statistics.
	IsVirtual(DomainID) bool
}

// PinSlackSource yields the setup slack tags for a single atom netlist
// pin. It is the per-pin entry point the placement and routing
// optimizers use; implementations must be cheap per call.
type PinSlackSource interface {
	PinSlacks(AtomPinID) []Tag
}

// NetPinLookup maps a routing-level net pin to the atom netlist pins it
// drives. Implemented by the netlist bridge of the surrounding tool.
type NetPinLookup interface {
	AtomPins(net, pin int) []AtomPinID
}
