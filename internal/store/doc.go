// Package store persists per-pass timing summaries to SQLite.
//
// The engine itself is stateless (everything is recomputed each
// analysis pass), but optimization flows run many passes, and tracking
// how WNS/TNS and the critical path move across iterations is how
// regressions get caught. The store keeps one row per recorded pass.
package store
