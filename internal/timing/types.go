package timing

// DomainID identifies a clock domain within the timing constraints.
type DomainID int

// NodeID identifies a node in the timing graph.
type NodeID int

// AtomPinID identifies a pin in the atom (logical) netlist.
// Used by the net-pin criticality bridge.
type AtomPinID int

// NodeType classifies timing graph nodes. Only sources and sinks are
// interesting to this engine (clock fanout counting); everything else
// is NodeOther.
type NodeType int

const (
	NodeOther NodeType = iota
	NodeSource
	NodeSink
)

// TagKind selects which tag class an analyzer query returns.
type TagKind int

const (
	// TagDataArrival selects data arrival-time tags.
	TagDataArrival TagKind = iota
	// TagDataRequired selects data required-time tags.
	TagDataRequired
)

// DomainPair is an ordered (launch, capture) clock domain pair. It is
// the key for every per-constraint mapping in the engine: two pairs are
// the same constraint context iff both ids match.
type DomainPair struct {
	Launch  DomainID
	Capture DomainID
}

// Intra reports whether the pair launches and captures on the same domain.
func (p DomainPair) Intra() bool { return p.Launch == p.Capture }

// Tag is one per-domain-pair timing value at a graph node, produced by
// the external STA engine and read-only here. For slack tags Time is
// the slack in seconds (negative means a violation); for arrival and
// required tags it is the arrival or required time in seconds.
type Tag struct {
	Launch  DomainID
	Capture DomainID
	Time    float64
}

// Pair returns the tag's domain pair.
func (t Tag) Pair() DomainPair { return DomainPair{Launch: t.Launch, Capture: t.Capture} }

// PathInfo describes the critical path for one domain pair: the maximum
// delay path and its slack. Delay and Slack may be NaN when the
// analyzer has no defined value; reductions in the metrics package
// treat NaN as worse than any real value.
type PathInfo struct {
	Launch  DomainID
	Capture DomainID
	Delay   float64
	Slack   float64
}

// Pair returns the path's domain pair.
func (p PathInfo) Pair() DomainPair { return DomainPair{Launch: p.Launch, Capture: p.Capture} }
