// Package errs provides the standardized error types used across the dispatch
// engine. Every failure that crosses a layer boundary is expressed through one
// of these types (or a domain sentinel wrapping one), so callers can classify
// outcomes with errors.Is instead of string matching.
//
// The taxonomy:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: a record lookup found nothing
//
// Each type follows the same pattern: a sentinel error variable (e.g.
// ErrObjectNotFound), a struct carrying the failure details and an optional
// Cause, constructors with and without cause, an Error() formatter, and an
// Unwrap() that returns the sentinel. The sentinel is what callers match on;
// the struct is what log lines and HTTP mappers inspect.
package errs
