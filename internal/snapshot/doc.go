// Package snapshot loads a captured timing analysis pass from a YAML
// file and exposes it through the timing interfaces.
//
// A snapshot carries everything the metrics engine consumes: the clock
// domains, the graph nodes with their slack / arrival / required tags,
// the per-pair setup constraints, and the per-pair critical paths the
// analyzer computed. It lets the CLI (and tests) drive the engine
// without the external STA process being present.
//
// Files are checked against an embedded CUE schema before decoding, and
// clock-domain display names are NFC-normalized so name lookups and
// report bytes do not depend on how the file was encoded.
package snapshot
