package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	doc := []byte(`
name: ok
domains:
  - {id: 0, name: clk}
nodes:
  - id: 1
    type: sink
    logical_output: true
    setup_slacks:
      - {launch: 0, capture: 0, time: -0.5e-9}
`)
	require.NoError(t, Validate(doc))
}

func TestValidate_RejectsUnknownNodeType(t *testing.T) {
	doc := []byte(`
domains:
  - {id: 0, name: clk}
nodes:
  - {id: 1, type: widget}
`)
	err := Validate(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestValidate_RejectsNegativeDomainID(t *testing.T) {
	doc := []byte(`
domains:
  - {id: -1, name: clk}
`)
	assert.Error(t, Validate(doc))
}

func TestValidate_RejectsMissingDomains(t *testing.T) {
	doc := []byte(`
name: incomplete
`)
	assert.Error(t, Validate(doc))
}

func TestValidate_RejectsNonNumericTime(t *testing.T) {
	doc := []byte(`
domains:
  - {id: 0, name: clk}
nodes:
  - id: 1
    setup_slacks:
      - {launch: 0, capture: 0, time: soon}
`)
	assert.Error(t, Validate(doc))
}
