// Package errs provides standardized error types for the food order application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the API:
//   - ValueIsRequiredError / ValueIsInvalidError: domain-level validation failures
//   - ObjectNotFoundError: a referenced identifier does not exist (404)
//   - ValidationError: field-level request validation failures (422)
//   - ForbiddenError: role or ownership mismatch (403)
//   - BadCredentialsError: failed login attempt (reported as 422)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The HTTP adapter maps these types to status codes and response envelopes in
// a single place, so handlers and use cases only deal with typed errors.
package errs
