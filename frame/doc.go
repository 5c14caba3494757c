// Package frame provides the core column-oriented table: named, typed
// columns over ordered rows, with copy-based projection and subsetting
// plus in-place numeric mutation.
//
// 🚀 What is frame?
//
//	A small, deterministic, in-memory tabular structure that brings together:
//		• Typed columns: Float64 measurements and String categoricals
//		• Rectangularity: every column holds exactly one value per row
//		• Unique names: a Frame never carries two columns with the same name
//		• Subsetting: Select (columns), Filter / FilterEq / Head / Take (rows)
//		• Mutation: WithColumn (copying) and AddWhere (in place)
//
// ✨ Why choose frame?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – all row subsets are deep copies; no hidden sharing
//   - Pure Go – no cgo, no hidden deps
//
// Errors:
//
//	ErrNilFrame         - nil *Frame receiver or argument.
//	ErrEmptyColumnName  - column constructed with an empty name.
//	ErrDuplicateColumn  - two columns share one name.
//	ErrColumnNotFound   - requested column does not exist.
//	ErrLengthMismatch   - columns of differing lengths in one Frame.
//	ErrKindMismatch     - operation applied to a column of the wrong kind.
//	ErrNaNInf           - NaN or ±Inf rejected by the numeric policy.
//	ErrBadCount         - negative row count passed to Head.
//	ErrNilPredicate     - Filter or AddWhere called with a nil predicate.
//	ErrRowOutOfRange    - Take index outside [0, Len).
//
// All errors are sentinels matched with errors.Is; no frame API panics on
// user-triggered conditions.
package frame
