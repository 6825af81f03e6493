package snapshot

import (
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/openfpga/slackline/internal/timing"
)

// File-level document shapes. Field names match schema.cue.

type fileDoc struct {
	Name        string           `yaml:"name"`
	Domains     []fileDomain     `yaml:"domains"`
	Nodes       []fileNode       `yaml:"nodes"`
	Constraints []fileConstraint `yaml:"constraints"`
	SetupPaths  []filePath       `yaml:"setup_paths"`
}

type fileDomain struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Virtual bool   `yaml:"virtual"`
}

type fileTag struct {
	Launch  int     `yaml:"launch"`
	Capture int     `yaml:"capture"`
	Time    float64 `yaml:"time"`
}

type fileNode struct {
	ID             int       `yaml:"id"`
	Type           string    `yaml:"type"`
	LogicalOutput  bool      `yaml:"logical_output"`
	SetupSlacks    []fileTag `yaml:"setup_slacks"`
	HoldSlacks     []fileTag `yaml:"hold_slacks"`
	SetupArrivals  []fileTag `yaml:"setup_arrivals"`
	SetupRequireds []fileTag `yaml:"setup_requireds"`
}

type fileConstraint struct {
	Launch  int     `yaml:"launch"`
	Capture int     `yaml:"capture"`
	Value   float64 `yaml:"value"`
}

type filePath struct {
	Launch  int     `yaml:"launch"`
	Capture int     `yaml:"capture"`
	Delay   float64 `yaml:"delay"`
	Slack   float64 `yaml:"slack"`
}

// Load reads, validates and decodes a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(data)
}

// Parse validates the YAML bytes against the embedded schema and builds
// the in-memory snapshot.
func Parse(data []byte) (*Snapshot, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return build(&doc)
}

func build(doc *fileDoc) (*Snapshot, error) {
	s := &Snapshot{
		name:           doc.Name,
		names:          make(map[timing.DomainID]string, len(doc.Domains)),
		virtual:        make(map[timing.DomainID]bool, len(doc.Domains)),
		setupCons:      make(map[timing.DomainPair]float64, len(doc.Constraints)),
		nodeTypes:      make(map[timing.NodeID]timing.NodeType, len(doc.Nodes)),
		setupSlacks:    make(map[timing.NodeID][]timing.Tag),
		holdSlacks:     make(map[timing.NodeID][]timing.Tag),
		setupArrivals:  make(map[timing.NodeID][]timing.Tag),
		setupRequireds: make(map[timing.NodeID][]timing.Tag),
	}

	for _, d := range doc.Domains {
		id := timing.DomainID(d.ID)
		if _, dup := s.names[id]; dup {
			return nil, fmt.Errorf("duplicate clock domain id %d", d.ID)
		}
		s.domains = append(s.domains, id)
		// Display names may be pasted from differently-encoded
		// constraint files; normalize so lookups and report bytes
		// are stable.
		s.names[id] = norm.NFC.String(d.Name)
		s.virtual[id] = d.Virtual
	}

	for _, c := range doc.Constraints {
		pair, err := s.pair(c.Launch, c.Capture)
		if err != nil {
			return nil, fmt.Errorf("constraint: %w", err)
		}
		s.setupCons[pair] = c.Value
	}

	for _, n := range doc.Nodes {
		id := timing.NodeID(n.ID)
		if _, dup := s.nodeTypes[id]; dup {
			return nil, fmt.Errorf("duplicate node id %d", n.ID)
		}
		nt, err := parseNodeType(n.Type)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
		s.nodes = append(s.nodes, id)
		s.nodeTypes[id] = nt
		if n.LogicalOutput {
			s.logicalOutputs = append(s.logicalOutputs, id)
		}

		for _, tagSet := range []struct {
			tags []fileTag
			dst  map[timing.NodeID][]timing.Tag
		}{
			{n.SetupSlacks, s.setupSlacks},
			{n.HoldSlacks, s.holdSlacks},
			{n.SetupArrivals, s.setupArrivals},
			{n.SetupRequireds, s.setupRequireds},
		} {
			for _, t := range tagSet.tags {
				pair, err := s.pair(t.Launch, t.Capture)
				if err != nil {
					return nil, fmt.Errorf("node %d: %w", n.ID, err)
				}
				tagSet.dst[id] = append(tagSet.dst[id], timing.Tag{
					Launch:  pair.Launch,
					Capture: pair.Capture,
					Time:    t.Time,
				})
			}
		}
	}

	for _, p := range doc.SetupPaths {
		pair, err := s.pair(p.Launch, p.Capture)
		if err != nil {
			return nil, fmt.Errorf("setup path: %w", err)
		}
		s.setupPaths = append(s.setupPaths, timing.PathInfo{
			Launch:  pair.Launch,
			Capture: pair.Capture,
			Delay:   p.Delay,
			Slack:   p.Slack,
		})
	}

	return s, nil
}

// pair resolves a (launch, capture) reference, rejecting unknown ids.
func (s *Snapshot) pair(launch, capture int) (timing.DomainPair, error) {
	l := timing.DomainID(launch)
	c := timing.DomainID(capture)
	if _, ok := s.names[l]; !ok {
		return timing.DomainPair{}, fmt.Errorf("unknown launch domain %d", launch)
	}
	if _, ok := s.names[c]; !ok {
		return timing.DomainPair{}, fmt.Errorf("unknown capture domain %d", capture)
	}
	return timing.DomainPair{Launch: l, Capture: c}, nil
}

func parseNodeType(t string) (timing.NodeType, error) {
	switch t {
	case "source":
		return timing.NodeSource, nil
	case "sink":
		return timing.NodeSink, nil
	case "", "other":
		return timing.NodeOther, nil
	default:
		return 0, fmt.Errorf("unknown node type %q", t)
	}
}
