package router

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// routeKey identifies a route slot: method plus normalized template.
// Two templates are identical when they differ only in parameter names
// (/items/:id and /items/:item_id occupy the same slot).
type routeKey struct {
	method   string
	template string
}

// route is one registered handler with enough metadata to log an
// override meaningfully.
type route struct {
	method  string
	path    string
	name    string
	handler echo.HandlerFunc
}

// Table is a route table keyed by (method, normalized template) with
// an explicit duplicate policy: the last registration for an identical
// template wins, and every override is logged with both handler names.
// Registration order is preserved for the winning routes.
type Table struct {
	logger *zerolog.Logger
	routes map[routeKey]*route
	order  []routeKey
}

// NewTable creates an empty route table.
func NewTable(logger *zerolog.Logger) *Table {
	return &Table{
		logger: logger,
		routes: make(map[routeKey]*route),
	}
}

// Add registers a handler under method+path. name identifies the
// handler in override logs.
func (t *Table) Add(method, path, name string, h echo.HandlerFunc) {
	key := routeKey{method: method, template: normalizeTemplate(path)}

	if existing, ok := t.routes[key]; ok {
		t.logger.Warn().
			Str("method", method).
			Str("template", key.template).
			Str("replaced", existing.name).
			Str("with", name).
			Msg("duplicate route registration, last write wins")

		// Keep the slot's position in registration order but replace
		// its contents, including the path so parameter names match
		// the winning handler's bindings.
		existing.path = path
		existing.name = name
		existing.handler = h
		return
	}

	t.routes[key] = &route{method: method, path: path, name: name, handler: h}
	t.order = append(t.order, key)
}

// Apply registers the winning routes on the echo instance in their
// original registration order.
func (t *Table) Apply(e *echo.Echo) {
	for _, key := range t.order {
		r := t.routes[key]
		e.Add(r.method, r.path, r.handler)
	}
}

// normalizeTemplate replaces every parameter segment with a fixed
// placeholder so templates compare structurally.
func normalizeTemplate(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = ":param"
		}
	}
	return strings.Join(segments, "/")
}
