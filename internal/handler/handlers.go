package handler

import (
	"github.com/deadpoolio/chimichangapp/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Items  *ItemsHandler  // Items serves the /items* demo routes.
	Users  *UsersHandler  // Users serves the user-scoped item lookup.
	Models *ModelsHandler // Models serves the enum-constrained model lookup.
	Meta   *MetaHandler   // Meta serves the root greeting and API metadata.
	Health *HealthHandler // Health serves the liveness endpoint.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Items:  NewItemsHandler(s),
		Users:  NewUsersHandler(s),
		Models: NewModelsHandler(s),
		Meta:   NewMetaHandler(s),
		Health: NewHealthHandler(s),
	}
}
