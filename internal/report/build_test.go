package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfpga/slackline/internal/metrics"
	"github.com/openfpga/slackline/internal/testutil"
	"github.com/openfpga/slackline/internal/timing"
)

func TestBuild_SingleClock(t *testing.T) {
	f := singleClockFixture()

	rpt, err := Build(f, f, f, f, 4)
	require.NoError(t, err)

	s := rpt.Setup
	require.True(t, s.HasCriticalPath)
	assert.Equal(t, 2e-9, s.CriticalPath.Delay)
	assert.True(t, s.ShowFmax)
	assert.False(t, s.MultiClock)
	assert.Nil(t, s.Geomean)
	assert.Equal(t, -0.5e-9, s.WNS)
	assert.InDelta(t, -0.5e-9, s.TNS, 1e-18)
	assert.Len(t, s.Histogram, 4)

	h := rpt.Hold
	assert.Equal(t, 0.0, h.WNS)
	assert.Equal(t, 0.0, h.TNS)
	assert.False(t, h.MultiClock)
}

func TestBuild_MultiClock(t *testing.T) {
	f := multiClockFixture()

	rpt, err := Build(f, f, f, f, 4)
	require.NoError(t, err)

	s := rpt.Setup
	require.True(t, s.HasCriticalPath)
	// Least-slack path, not longest-delay.
	assert.Equal(t, timing.DomainPair{Launch: 1, Capture: 1}, s.CriticalPath.Pair())
	assert.False(t, s.ShowFmax)
	assert.True(t, s.MultiClock)

	require.Len(t, s.IntraCPDs, 3)
	assert.Equal(t, "clk_a", s.IntraCPDs[0].LaunchName)
	assert.Equal(t, 1e-9, s.IntraCPDs[0].Value)
	assert.Equal(t, "virt", s.IntraCPDs[2].LaunchName)

	require.Len(t, s.InterCPDs, 1)
	assert.Equal(t, "clk_a", s.InterCPDs[0].LaunchName)
	assert.Equal(t, "clk_b", s.InterCPDs[0].CaptureName)
	assert.Equal(t, 1.5e-9, s.InterCPDs[0].Value)

	require.Len(t, s.IntraWorstSlacks, 3)
	assert.Equal(t, -0.1e-9, s.IntraWorstSlacks[1].Value)
	require.Len(t, s.InterWorstSlacks, 1)
	assert.Equal(t, 0.05e-9, s.InterWorstSlacks[0].Value)

	// Virtual clk is excluded from both geomeans. Fanouts are 2 for
	// clk_a and 6 for clk_b, so the weighted mean leans toward clk_b.
	require.NotNil(t, s.Geomean)
	assert.InDelta(t, 2e-9, s.Geomean.IntraDomainCPD, 1e-18)
	assert.InDelta(t, 1.7320508075688774e-9, s.Geomean.WeightedIntraDomainCPD, 1e-18)

	h := rpt.Hold
	assert.True(t, h.MultiClock)
	require.Len(t, h.IntraWorstSlacks, 2)
	assert.Equal(t, 0.02e-9, h.IntraWorstSlacks[0].Value)
	assert.Equal(t, 0.01e-9, h.IntraWorstSlacks[1].Value)
	// Pairs with no hold path are skipped entirely.
	require.Len(t, h.InterWorstSlacks, 1)
	assert.Equal(t, -0.03e-9, h.InterWorstSlacks[0].Value)
}

func TestBuild_NoPaths(t *testing.T) {
	f := testutil.NewFixture().AddDomain(0, "clk", false)

	rpt, err := Build(f, f, f, f, 4)
	require.NoError(t, err)

	assert.False(t, rpt.Setup.HasCriticalPath)
	assert.Equal(t, 0.0, rpt.Setup.WNS)
	assert.Nil(t, rpt.Setup.Histogram)
	assert.Nil(t, rpt.Hold.Histogram)
}

func TestBuild_MissingFanoutFails(t *testing.T) {
	// An intra-domain path whose launch domain has no source or sink
	// tags cannot be weighted.
	f := testutil.NewFixture().
		AddDomain(0, "clk_a", false).
		AddDomain(1, "clk_b", false).
		AddNode(1, timing.NodeSink, true).
		AddSetupSlack(1, 0, 0, 0.1e-9).
		AddPath(0, 0, 1e-9, 0.1e-9).
		AddPath(1, 1, 2e-9, 0.2e-9)

	_, err := Build(f, f, f, f, 4)
	require.Error(t, err)
	var cerr *metrics.ContractError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, metrics.ErrCodeMissingFanout, cerr.Code)
}

func TestBuild_GeomeanOmittedWhenAllVirtual(t *testing.T) {
	f := testutil.NewFixture().
		AddDomain(0, "virt_a", true).
		AddDomain(1, "virt_b", true).
		AddNode(1, timing.NodeSink, true).
		AddSetupSlack(1, 0, 0, 0.1e-9).
		AddPath(0, 0, 1e-9, 0.1e-9).
		AddPath(1, 1, 2e-9, 0.2e-9)

	rpt, err := Build(f, f, f, f, 4)
	require.NoError(t, err)
	assert.True(t, rpt.Setup.MultiClock)
	assert.Nil(t, rpt.Setup.Geomean)
}

func TestBuild_PropagatesHistogramError(t *testing.T) {
	f := singleClockFixture()

	_, err := Build(f, f, f, f, 0)
	require.Error(t, err)
	var cerr *metrics.ContractError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, metrics.ErrCodeZeroBins, cerr.Code)
}
