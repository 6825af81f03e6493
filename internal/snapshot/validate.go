package snapshot

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE string

// Validate checks snapshot YAML bytes against the embedded CUE schema.
// It reports shape errors (wrong types, unknown node kinds, negative
// ids) before any decoding happens; referential errors (a tag naming a
// domain that does not exist) are caught later by the loader.
func Validate(data []byte) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile snapshot schema: %w", err)
	}

	if err := cueyaml.Validate(data, schema); err != nil {
		return fmt.Errorf("snapshot does not match schema: %w", err)
	}
	return nil
}
