// Package middleware stores the global middleware stack.
//
// It intercepts requests to handle cross-cutting concerns: the CORS
// policy, request IDs, request-scoped logging, panic recovery, and the
// global error handler that turns every error into the API's JSON
// error shape.
package middleware
