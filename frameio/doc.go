// Package frameio moves frames across the CSV boundary: header-driven
// reading with per-column type inference, and symmetric writing.
//
// Inference rule: a column whose every value parses as float64 becomes a
// Float64 column; anything else stays String. WithNoInference forces all
// columns to String. Empty input (no header) is rejected; a header-only
// input yields a zero-row frame with the full schema.
package frameio
