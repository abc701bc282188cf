// Package errs provides standardized error types for the courier portal.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two families of errors live here.
//
// Value errors guard domain construction:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: an object cannot be found
//
// Pipeline errors classify order-fulfillment failures so the HTTP layer
// can map each failure to a response without inspecting messages:
//   - ValidationError: malformed or missing input, no network call made
//   - LookupError: postal resolution exhausted every strategy
//   - AuthError: upstream carrier login failed
//   - ProvisioningError: pickup location creation rejected
//   - UpstreamOrderError: shipment creation rejected upstream
//   - RateUnavailableError: no serviceable courier quotes
//   - AssignmentError: AWB assignment rejected upstream
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is support
package errs
