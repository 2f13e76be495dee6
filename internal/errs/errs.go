// Package errs defines the custom error types returned to API clients.
//
// Every error the API surfaces is an *HTTPError: an HTTP status, a
// machine-readable code string, a human-readable message, and (for
// validation failures) a list of per-field errors. The global error
// handler in the middleware package serializes these to JSON, so
// handlers and validation can just `return err` and get a consistent
// response shape.
package errs
