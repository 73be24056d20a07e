// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: a Severity, a compact numeric Code with
// a stable string form, a human-oriented Message, and the primary
// source.Span pointing at the issue. Phases emit diagnostics through a
// Reporter so that emission stays decoupled from storage; BagReporter
// aggregates them into a Bag, which supports sorting and cap enforcement.
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
package diag
