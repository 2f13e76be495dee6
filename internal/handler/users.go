package handler

import (
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/labstack/echo/v4"
)

// UsersHandler serves the user-scoped item lookup.
type UsersHandler struct {
	Handler
}

// NewUsersHandler constructs a UsersHandler with access to shared app
// dependencies.
func NewUsersHandler(s *server.Server) *UsersHandler {
	return &UsersHandler{
		Handler: NewHandler(s),
	}
}

// GetItem returns the item/owner pair with the same shaping rules as
// the plain item lookup, but without an existence check: the user
// scope is demonstrative, not backed by the store.
func (h *UsersHandler) GetItem(c echo.Context, req *UserItemRequest) (map[string]any, error) {
	item := map[string]any{
		"item_id":  req.ItemID,
		"owner_id": req.UserID,
	}
	if req.Q != nil && *req.Q != "" {
		item["q"] = *req.Q
	}
	if !req.Short.Bool() {
		item["description"] = shortHelpText
	}
	return item, nil
}
