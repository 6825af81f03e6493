package testutil

import (
	"github.com/openfpga/slackline/internal/timing"
)

// PinMap is an in-memory netlist bridge for criticality tests. It
// implements timing.NetPinLookup and timing.PinSlackSource.
type PinMap struct {
	atomPins map[[2]int][]timing.AtomPinID
	slacks   map[timing.AtomPinID][]timing.Tag
}

// NewPinMap creates an empty pin map.
func NewPinMap() *PinMap {
	return &PinMap{
		atomPins: make(map[[2]int][]timing.AtomPinID),
		slacks:   make(map[timing.AtomPinID][]timing.Tag),
	}
}

// MapNetPin maps a (net, pin) to one or more atom pins.
func (m *PinMap) MapNetPin(net, pin int, atoms ...timing.AtomPinID) *PinMap {
	m.atomPins[[2]int{net, pin}] = append(m.atomPins[[2]int{net, pin}], atoms...)
	return m
}

// AddPinSlack attaches a slack tag to an atom pin.
func (m *PinMap) AddPinSlack(atom timing.AtomPinID, launch, capture timing.DomainID, slack float64) *PinMap {
	m.slacks[atom] = append(m.slacks[atom], timing.Tag{Launch: launch, Capture: capture, Time: slack})
	return m
}

// AtomPins implements timing.NetPinLookup.
func (m *PinMap) AtomPins(net, pin int) []timing.AtomPinID {
	return m.atomPins[[2]int{net, pin}]
}

// PinSlacks implements timing.PinSlackSource.
func (m *PinMap) PinSlacks(atom timing.AtomPinID) []timing.Tag {
	return m.slacks[atom]
}
