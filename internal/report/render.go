package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/openfpga/slackline/internal/metrics"
	"github.com/openfpga/slackline/internal/timing"
)

// histogramBarWidth is the width of the longest histogram bar.
const histogramBarWidth = 40

// Render writes the textual timing summary. The field set, ordering
// and unit conversions (ns, MHz) are an observable contract: tools
// scrape this text.
func Render(w io.Writer, rpt *Report) error {
	p := &printer{w: w}

	renderSetup(p, &rpt.Setup)
	p.f("\n")
	renderHold(p, &rpt.Hold)

	return p.err
}

func renderSetup(p *printer, s *SetupSummary) {
	if s.HasCriticalPath {
		p.f("Final critical path: %g ns", timing.SecToNs(s.CriticalPath.Delay))
		if s.ShowFmax {
			// Fmax is only meaningful for a single-clock circuit.
			p.f(", Fmax: %g MHz", timing.SecToMHz(s.CriticalPath.Delay))
		}
		p.f("\n")
	} else {
		p.f("Final critical path: none\n")
	}

	p.f("Setup Worst Negative Slack (sWNS): %g ns\n", timing.SecToNs(s.WNS))
	p.f("Setup Total Negative Slack (sTNS): %g ns\n", timing.SecToNs(s.TNS))
	p.f("\n")

	p.f("Setup slack histogram:\n")
	renderHistogram(p, s.Histogram)

	if s.MultiClock {
		p.f("\n")
		p.f("Intra-domain critical path delays (CPDs):\n")
		for _, pv := range s.IntraCPDs {
			p.f("  %s to %s CPD: %g ns (%g MHz)\n", pv.LaunchName, pv.CaptureName,
				timing.SecToNs(pv.Value), timing.SecToMHz(pv.Value))
		}
		p.f("\n")
		p.f("Inter-domain critical path delays (CPDs):\n")
		for _, pv := range s.InterCPDs {
			p.f("  %s to %s CPD: %g ns (%g MHz)\n", pv.LaunchName, pv.CaptureName,
				timing.SecToNs(pv.Value), timing.SecToMHz(pv.Value))
		}
		p.f("\n")
		p.f("Intra-domain worst setup slacks per constraint:\n")
		for _, pv := range s.IntraWorstSlacks {
			p.f("  %s to %s worst setup slack: %g ns\n", pv.LaunchName, pv.CaptureName,
				timing.SecToNs(pv.Value))
		}
		p.f("\n")
		p.f("Inter-domain worst setup slacks per constraint:\n")
		for _, pv := range s.InterWorstSlacks {
			p.f("  %s to %s worst setup slack: %g ns\n", pv.LaunchName, pv.CaptureName,
				timing.SecToNs(pv.Value))
		}
	}

	if s.Geomean != nil {
		p.f("\n")
		p.f("Geometric mean non-virtual intra-domain period: %g ns (%g MHz)\n",
			timing.SecToNs(s.Geomean.IntraDomainCPD), timing.SecToMHz(s.Geomean.IntraDomainCPD))
		p.f("Fanout-weighted geomean non-virtual intra-domain period: %g ns (%g MHz)\n",
			timing.SecToNs(s.Geomean.WeightedIntraDomainCPD), timing.SecToMHz(s.Geomean.WeightedIntraDomainCPD))
	}
}

func renderHold(p *printer, h *HoldSummary) {
	p.f("Hold Worst Negative Slack (hWNS): %g ns\n", timing.SecToNs(h.WNS))
	p.f("Hold Total Negative Slack (hTNS): %g ns\n", timing.SecToNs(h.TNS))
	p.f("\n")

	p.f("Hold slack histogram:\n")
	renderHistogram(p, h.Histogram)

	if h.MultiClock {
		p.f("\n")
		p.f("Intra-domain worst hold slacks per constraint:\n")
		for _, pv := range h.IntraWorstSlacks {
			p.f("  %s to %s worst hold slack: %g ns\n", pv.LaunchName, pv.CaptureName,
				timing.SecToNs(pv.Value))
		}
		p.f("\n")
		p.f("Inter-domain worst hold slacks per constraint:\n")
		for _, pv := range h.InterWorstSlacks {
			p.f("  %s to %s worst hold slack: %g ns\n", pv.LaunchName, pv.CaptureName,
				timing.SecToNs(pv.Value))
		}
	}
}

// renderHistogram prints one line per bucket with edges in ns and a
// star bar proportional to the largest count.
func renderHistogram(p *printer, buckets []metrics.HistogramBucket) {
	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	for _, b := range buckets {
		bar := 0
		if maxCount > 0 {
			bar = b.Count * histogramBarWidth / maxCount
		}
		if b.Count > 0 && bar == 0 {
			bar = 1
		}
		p.f("  [%10.3g ns, %10.3g ns]  %5d  %s\n",
			timing.SecToNs(b.Min), timing.SecToNs(b.Max), b.Count, strings.Repeat("*", bar))
	}
}

// printer accumulates the first write error so render code stays flat.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) f(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
