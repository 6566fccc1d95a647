// Package errs provides the error types shared by the fulfillment core.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the details
//   - New...Error and New...ErrorWithCause constructors
//   - Error() for formatting and Unwrap() returning the sentinel
//
// KindOf folds any error into the four outcomes the core reports to its
// callers (Not-Found, Forbidden, Conflict, Internal) plus Invalid for input
// that failed validation.
package errs
