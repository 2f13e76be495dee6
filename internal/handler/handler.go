// Package handler is the HTTP layer: the entry point for route logic
// after the router.
//
// Request payloads are typed structs bound and validated by the
// validation package before a handler function runs, so handlers only
// ever see data that satisfies the declared schema. Results are plain
// Go values serialized to JSON by the shared pipeline in base.go.
package handler
