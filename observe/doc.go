// Package observe provides observability primitives for work execution.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. Consumers wire the observer around units of work
// via Instrument, alongside the modifiers in the wrap package.
package observe
