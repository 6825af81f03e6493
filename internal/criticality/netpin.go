package criticality

import (
	"github.com/openfpga/slackline/internal/timing"
)

// NetPinCriticality returns the criticality of a routing-level net pin.
//
// A net pin may map to several atom netlist pins; the pin's criticality
// is the maximum over them, consistent with the pessimistic merge the
// Calculator applies across domain pairs. A pin with no atom pins (or
// whose atom pins carry no slack tags) reports 0, not timing-critical.
func NetPinCriticality(calc *Calculator, lookup timing.NetPinLookup, slacks timing.PinSlackSource, net, pin int) (float64, error) {
	pinCrit := 0.0
	for _, atomPin := range lookup.AtomPins(net, pin) {
		crit, err := calc.Criticality(slacks.PinSlacks(atomPin))
		if err != nil {
			return 0, err
		}
		if crit > pinCrit {
			pinCrit = crit
		}
	}
	return pinCrit, nil
}
