package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfpga/slackline/internal/testutil"
	"github.com/openfpga/slackline/internal/timing"
)

func slackFixture() *testutil.Fixture {
	return testutil.NewFixture().
		AddDomain(0, "clk_a", false).
		AddDomain(1, "clk_b", false).
		AddNode(1, timing.NodeSink, true).
		AddNode(2, timing.NodeSink, true).
		AddSetupSlack(1, 0, 0, -0.5e-9).
		AddSetupSlack(1, 0, 1, 0.2e-9).
		AddSetupSlack(2, 1, 1, -0.25e-9).
		AddHoldSlack(1, 0, 0, 0.1e-9).
		AddHoldSlack(2, 1, 1, -0.05e-9)
}

func TestSetupTNS_SumsOnlyNegative(t *testing.T) {
	f := slackFixture()
	assert.InDelta(t, -0.75e-9, SetupTNS(f, f), 1e-18)
}

func TestSetupWNS_MostNegative(t *testing.T) {
	f := slackFixture()
	assert.Equal(t, -0.5e-9, SetupWNS(f, f))
}

func TestSetupWNS_NoViolationIsExactlyZero(t *testing.T) {
	f := testutil.NewFixture().
		AddDomain(0, "clk", false).
		AddNode(1, timing.NodeSink, true).
		AddSetupSlack(1, 0, 0, 0.3e-9).
		AddSetupSlack(1, 0, 0, 1.2e-9)

	assert.Equal(t, 0.0, SetupWNS(f, f))
	assert.Equal(t, 0.0, SetupTNS(f, f))
}

func TestHoldWNSAndTNS(t *testing.T) {
	f := slackFixture()
	assert.Equal(t, -0.05e-9, HoldWNS(f, f))
	assert.InDelta(t, -0.05e-9, HoldTNS(f, f), 1e-18)
}

func TestNodeSetupSlack(t *testing.T) {
	f := slackFixture()

	slack, ok := NodeSetupSlack(f, 1, timing.DomainPair{Launch: 0, Capture: 1})
	require.True(t, ok)
	assert.Equal(t, 0.2e-9, slack)

	// No tag for this pair at node 2.
	_, ok = NodeSetupSlack(f, 2, timing.DomainPair{Launch: 0, Capture: 1})
	assert.False(t, ok)
}

func TestHoldWorstSlack(t *testing.T) {
	f := slackFixture()

	worst, ok := HoldWorstSlack(f, f, timing.DomainPair{Launch: 1, Capture: 1})
	require.True(t, ok)
	assert.Equal(t, -0.05e-9, worst)

	// Positive worst slacks must be reported as-is, not clamped.
	worst, ok = HoldWorstSlack(f, f, timing.DomainPair{Launch: 0, Capture: 0})
	require.True(t, ok)
	assert.Equal(t, 0.1e-9, worst)

	// No path for this pair.
	_, ok = HoldWorstSlack(f, f, timing.DomainPair{Launch: 1, Capture: 0})
	assert.False(t, ok)
}
