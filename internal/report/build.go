package report

import (
	"github.com/openfpga/slackline/internal/metrics"
	"github.com/openfpga/slackline/internal/timing"
)

// DefaultHistogramBins is the bucket count used by Build when the
// caller does not care.
const DefaultHistogramBins = 10

// Build runs the full metrics pass and assembles the structured report.
// It is pure: all inputs are read-only and no output is emitted.
func Build(g timing.Graph, constraints timing.Constraints, setup timing.SetupAnalyzer, hold timing.HoldAnalyzer, numBins int) (*Report, error) {
	var rpt Report

	if err := buildSetup(&rpt.Setup, g, constraints, setup, numBins); err != nil {
		return nil, err
	}
	if err := buildHold(&rpt.Hold, g, constraints, hold, numBins); err != nil {
		return nil, err
	}

	return &rpt, nil
}

func buildSetup(s *SetupSummary, g timing.Graph, constraints timing.Constraints, setup timing.SetupAnalyzer, numBins int) error {
	paths := setup.CriticalPaths()

	s.CriticalPath, s.HasCriticalPath = metrics.FindLeastSlackCriticalPath(setup)
	s.ShowFmax = len(constraints.ClockDomains()) == 1

	s.WNS = metrics.SetupWNS(g, setup)
	s.TNS = metrics.SetupTNS(g, setup)

	hist, err := metrics.SetupSlackHistogram(g, setup, numBins)
	if err != nil {
		return err
	}
	s.Histogram = hist

	s.MultiClock = len(paths) > 1
	if s.MultiClock {
		for _, p := range paths {
			pv := PairValue{
				Pair:        p.Pair(),
				LaunchName:  constraints.DomainName(p.Launch),
				CaptureName: constraints.DomainName(p.Capture),
			}

			cpd := pv
			cpd.Value = p.Delay
			slack := pv
			slack.Value = p.Slack

			if p.Pair().Intra() {
				s.IntraCPDs = append(s.IntraCPDs, cpd)
				s.IntraWorstSlacks = append(s.IntraWorstSlacks, slack)
			} else {
				s.InterCPDs = append(s.InterCPDs, cpd)
				s.InterWorstSlacks = append(s.InterWorstSlacks, slack)
			}
		}

		geomean, err := buildGeomeans(g, constraints, setup, paths)
		if err != nil {
			return err
		}
		s.Geomean = geomean
	}

	return nil
}

func buildHold(h *HoldSummary, g timing.Graph, constraints timing.Constraints, hold timing.HoldAnalyzer, numBins int) error {
	h.WNS = metrics.HoldWNS(g, hold)
	h.TNS = metrics.HoldTNS(g, hold)

	hist, err := metrics.HoldSlackHistogram(g, hold, numBins)
	if err != nil {
		return err
	}
	h.Histogram = hist

	domains := constraints.ClockDomains()
	h.MultiClock = len(domains) > 1
	if !h.MultiClock {
		return nil
	}

	for _, launch := range domains {
		for _, capture := range domains {
			pair := timing.DomainPair{Launch: launch, Capture: capture}
			worst, ok := metrics.HoldWorstSlack(g, hold, pair)
			if !ok {
				// No path for this pair.
				continue
			}
			pv := PairValue{
				Pair:        pair,
				LaunchName:  constraints.DomainName(launch),
				CaptureName: constraints.DomainName(capture),
				Value:       worst,
			}
			if pair.Intra() {
				h.IntraWorstSlacks = append(h.IntraWorstSlacks, pv)
			} else {
				h.InterWorstSlacks = append(h.InterWorstSlacks, pv)
			}
		}
	}

	return nil
}
