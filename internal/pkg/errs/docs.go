// Package errs provides the error taxonomy shared by the domain, the
// application use cases and the transport adapters.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type carrying the details of the failure
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels. The HTTP
// adapter maps them onto status codes:
//   - ErrObjectNotFound: 404
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: 400
//   - ErrTransitionRejected: 409
//   - ErrPermissionDenied: 403
package errs
