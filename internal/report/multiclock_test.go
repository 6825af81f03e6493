package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfpga/slackline/internal/testutil"
	"github.com/openfpga/slackline/internal/timing"
)

func TestBuildGeomeans_FanoutWeighting(t *testing.T) {
	// Two domains with CPDs 1 ns and 2 ns and fanouts 10 and 30. The
	// weights normalize to sum to 2, so the weighted delays are
	// 1*10*2/40 = 0.5 and 2*30*2/40 = 3.
	f := testutil.NewFixture().
		AddDomain(0, "clk_a", false).
		AddDomain(1, "clk_b", false).
		AddNode(20, timing.NodeSource, false).
		AddNode(21, timing.NodeSource, false).
		AddPath(0, 0, 1e-9, 0.1e-9).
		AddPath(1, 1, 2e-9, 0.2e-9)
	for i := 0; i < 10; i++ {
		f.AddSetupTag(20, timing.TagDataArrival, 0, 0, 1e-9)
	}
	for i := 0; i < 30; i++ {
		f.AddSetupTag(21, timing.TagDataArrival, 1, 1, 1e-9)
	}

	geomean, err := buildGeomeans(f, f, f, f.CriticalPaths())
	require.NoError(t, err)
	require.NotNil(t, geomean)

	assert.InDelta(t, math.Sqrt(2)*1e-9, geomean.IntraDomainCPD, 1e-22)
	assert.InDelta(t, math.Sqrt(1.5)*1e-9, geomean.WeightedIntraDomainCPD, 1e-22)
}

func TestBuildGeomeans_EqualFanoutsMatchUnweighted(t *testing.T) {
	f := testutil.NewFixture().
		AddDomain(0, "clk_a", false).
		AddDomain(1, "clk_b", false).
		AddNode(20, timing.NodeSource, false).
		AddNode(21, timing.NodeSource, false).
		AddSetupTag(20, timing.TagDataArrival, 0, 0, 1e-9).
		AddSetupTag(21, timing.TagDataArrival, 1, 1, 1e-9).
		AddPath(0, 0, 1e-9, 0.1e-9).
		AddPath(1, 1, 2e-9, 0.2e-9)

	geomean, err := buildGeomeans(f, f, f, f.CriticalPaths())
	require.NoError(t, err)
	require.NotNil(t, geomean)
	assert.Equal(t, geomean.IntraDomainCPD, geomean.WeightedIntraDomainCPD)
}

func TestBuildGeomeans_ExcludesInterDomainAndVirtual(t *testing.T) {
	f := testutil.NewFixture().
		AddDomain(0, "clk", false).
		AddDomain(1, "virt", true).
		AddNode(20, timing.NodeSource, false).
		AddSetupTag(20, timing.TagDataArrival, 0, 0, 1e-9).
		AddPath(0, 0, 2e-9, 0.1e-9).
		AddPath(1, 1, 9e-9, 0.2e-9).
		AddPath(0, 1, 7e-9, 0.3e-9)

	geomean, err := buildGeomeans(f, f, f, f.CriticalPaths())
	require.NoError(t, err)
	require.NotNil(t, geomean)
	assert.Equal(t, 2e-9, geomean.IntraDomainCPD)
	assert.Equal(t, 2e-9, geomean.WeightedIntraDomainCPD)
}
